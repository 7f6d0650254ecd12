package client

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/api"
	"github.com/dmitrijs2005/authkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	origin      string
	conn        *grpc.ClientConn
	client      api.AccountServiceClient
}

func withOrigin(ctx context.Context, origin string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.OriginHeaderName, origin)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) originInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.origin != "" {
		ctx = withOrigin(ctx, s.origin)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewAccountClient(endpointURL, origin string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, origin: origin}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.originInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewAccountServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) CreateAccount(ctx context.Context, email, name, password, confirmation string) (string, error) {
	req := &api.CreateAccountRequest{Email: email, Name: name, Password: password, PasswordConfirmation: confirmation}
	resp, err := s.client.CreateAccount(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Message, nil
}

func (s *GRPCClient) ConfirmAccount(ctx context.Context, token string) (string, error) {
	resp, err := s.client.ConfirmAccount(ctx, &api.ConfirmAccountRequest{Token: token})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Message, nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	resp, err := s.client.Login(ctx, &api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) RequestCode(ctx context.Context, email string) (string, error) {
	resp, err := s.client.RequestCode(ctx, &api.RequestCodeRequest{Email: email})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Message, nil
}

func (s *GRPCClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	resp, err := s.client.ForgotPassword(ctx, &api.ForgotPasswordRequest{Email: email})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Message, nil
}

func (s *GRPCClient) ValidateToken(ctx context.Context, token string) (string, error) {
	resp, err := s.client.ValidateToken(ctx, &api.ValidateTokenRequest{Token: token})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Message, nil
}

func (s *GRPCClient) UpdatePassword(ctx context.Context, token, password, confirmation string) (string, error) {
	req := &api.UpdatePasswordRequest{Token: token, Password: password, PasswordConfirmation: confirmation}
	resp, err := s.client.UpdatePassword(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Message, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	if _, err := s.client.Ping(ctx, &api.PingRequest{}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return &RemoteError{Code: st.Code(), Message: st.Message()}
	}
}
