package grpc

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/api"
)

func (s *GRPCServer) CreateAccount(ctx context.Context, req *api.CreateAccountRequest) (*api.MessageResponse, error) {
	if err := s.accounts.Register(ctx, req.Email, req.Name, req.Password); err != nil {
		return nil, toStatus(err)
	}
	return &api.MessageResponse{Message: api.MsgAccountCreated}, nil
}

func (s *GRPCServer) ConfirmAccount(ctx context.Context, req *api.ConfirmAccountRequest) (*api.MessageResponse, error) {
	if err := s.accounts.ConfirmAccount(ctx, req.Token); err != nil {
		return nil, toStatus(err)
	}
	return &api.MessageResponse{Message: api.MsgAccountConfirmed}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	id, err := s.accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.LoginResponse{
		Message:   api.MsgLoggedIn,
		AccountID: id.AccountID,
		Email:     id.Email,
		Name:      id.Name,
	}, nil
}

func (s *GRPCServer) RequestCode(ctx context.Context, req *api.RequestCodeRequest) (*api.MessageResponse, error) {
	if err := s.accounts.RequestConfirmationCode(ctx, req.Email); err != nil {
		return nil, toStatus(err)
	}
	return &api.MessageResponse{Message: api.MsgCodeSent}, nil
}

func (s *GRPCServer) ForgotPassword(ctx context.Context, req *api.ForgotPasswordRequest) (*api.MessageResponse, error) {
	if err := s.accounts.ForgotPassword(ctx, req.Email); err != nil {
		return nil, toStatus(err)
	}
	return &api.MessageResponse{Message: api.MsgResetSent}, nil
}

func (s *GRPCServer) ValidateToken(ctx context.Context, req *api.ValidateTokenRequest) (*api.MessageResponse, error) {
	if err := s.accounts.ValidateToken(ctx, req.Token); err != nil {
		return nil, toStatus(err)
	}
	return &api.MessageResponse{Message: api.MsgTokenValid}, nil
}

func (s *GRPCServer) UpdatePassword(ctx context.Context, req *api.UpdatePasswordRequest) (*api.MessageResponse, error) {
	if err := s.accounts.ResetPassword(ctx, req.Token, req.Password); err != nil {
		return nil, toStatus(err)
	}
	return &api.MessageResponse{Message: api.MsgPasswordUpdated}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.MessageResponse, error) {
	return &api.MessageResponse{Message: api.MsgPong}, nil
}
