package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/justsurfingit/jobby-board/internal/dtos"
)

type AuthService struct {
	Client *APIClient
}

func NewAuthService(client *APIClient) *AuthService {
	return &AuthService{Client: client}
}

// Login exchanges credentials for a bearer token.
// A rejection comes back as *AuthenticationError with the server's message;
// anything else that goes wrong is a *RequestError.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	body := dtos.LoginRequest{Username: username, Password: password}
	resp, err := s.Client.do(ctx, endpointLogin, http.MethodPost, s.Client.BaseURL+"/login", body, "")
	if err != nil {
		s.Client.record(endpointLogin, outcomeError, err)
		return "", err
	}

	if !resp.ok() {
		msg, ok := resp.errorMessage()
		if !ok {
			err := &RequestError{Endpoint: endpointLogin, Status: resp.status, Message: http.StatusText(resp.status)}
			s.Client.record(endpointLogin, outcomeError, err)
			return "", err
		}
		err := &AuthenticationError{Status: resp.status, Message: msg}
		s.Client.record(endpointLogin, outcomeRejected, err)
		return "", err
	}

	var parsed dtos.LoginResponse
	if err := json.Unmarshal(resp.body, &parsed); err != nil {
		reqErr := &RequestError{Endpoint: endpointLogin, Status: resp.status, Err: fmt.Errorf("decode login response: %w", err)}
		s.Client.record(endpointLogin, outcomeError, reqErr)
		return "", reqErr
	}
	if parsed.JWTToken == "" {
		reqErr := &RequestError{Endpoint: endpointLogin, Status: resp.status, Err: errors.New("login response has no jwt_token")}
		s.Client.record(endpointLogin, outcomeError, reqErr)
		return "", reqErr
	}

	s.Client.record(endpointLogin, outcomeSuccess, nil)
	return parsed.JWTToken, nil
}
