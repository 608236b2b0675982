package api

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type otpSendRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

type otpVerifyRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	OTP         string `json:"otp" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type"`
}

// Login authenticates an admin with email and password and returns the
// bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, epAuthLogin, http.MethodPost, "/auth/login", nil,
		loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// SendOTP starts the customer login flow by texting a one-time code to phone.
func (c *Client) SendOTP(ctx context.Context, phone string) error {
	return c.do(ctx, epAuthOTPSend, http.MethodPost, "/auth/otp/send", nil,
		otpSendRequest{PhoneNumber: phone}, nil)
}

// VerifyOTP completes the customer login flow. Unknown phone numbers are
// auto-registered server-side, so a valid code always yields a token.
func (c *Client) VerifyOTP(ctx context.Context, phone, otp string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, epAuthOTPVerify, http.MethodPost, "/auth/otp/verify", nil,
		otpVerifyRequest{PhoneNumber: phone, OTP: otp}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}
