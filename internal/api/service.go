package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "authkeeper.AccountService"

// Full method names, as seen by interceptors.
const (
	MethodCreateAccount  = "/" + ServiceName + "/CreateAccount"
	MethodConfirmAccount = "/" + ServiceName + "/ConfirmAccount"
	MethodLogin          = "/" + ServiceName + "/Login"
	MethodRequestCode    = "/" + ServiceName + "/RequestCode"
	MethodForgotPassword = "/" + ServiceName + "/ForgotPassword"
	MethodValidateToken  = "/" + ServiceName + "/ValidateToken"
	MethodUpdatePassword = "/" + ServiceName + "/UpdatePassword"
	MethodPing           = "/" + ServiceName + "/Ping"
)

// AccountServiceServer is the server API of the account service.
type AccountServiceServer interface {
	CreateAccount(context.Context, *CreateAccountRequest) (*MessageResponse, error)
	ConfirmAccount(context.Context, *ConfirmAccountRequest) (*MessageResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RequestCode(context.Context, *RequestCodeRequest) (*MessageResponse, error)
	ForgotPassword(context.Context, *ForgotPasswordRequest) (*MessageResponse, error)
	ValidateToken(context.Context, *ValidateTokenRequest) (*MessageResponse, error)
	UpdatePassword(context.Context, *UpdatePasswordRequest) (*MessageResponse, error)
	Ping(context.Context, *PingRequest) (*MessageResponse, error)
}

// UnimplementedAccountServiceServer answers every call with codes.Unimplemented.
type UnimplementedAccountServiceServer struct{}

func (UnimplementedAccountServiceServer) CreateAccount(context.Context, *CreateAccountRequest) (*MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateAccount not implemented")
}
func (UnimplementedAccountServiceServer) ConfirmAccount(context.Context, *ConfirmAccountRequest) (*MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfirmAccount not implemented")
}
func (UnimplementedAccountServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedAccountServiceServer) RequestCode(context.Context, *RequestCodeRequest) (*MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RequestCode not implemented")
}
func (UnimplementedAccountServiceServer) ForgotPassword(context.Context, *ForgotPasswordRequest) (*MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ForgotPassword not implemented")
}
func (UnimplementedAccountServiceServer) ValidateToken(context.Context, *ValidateTokenRequest) (*MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ValidateToken not implemented")
}
func (UnimplementedAccountServiceServer) UpdatePassword(context.Context, *UpdatePasswordRequest) (*MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePassword not implemented")
}
func (UnimplementedAccountServiceServer) Ping(context.Context, *PingRequest) (*MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&AccountServiceDesc, srv)
}

// unaryHandler adapts a typed method to grpc.MethodHandler.
func unaryHandler[Req any, Resp any](method string, call func(AccountServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AccountServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AccountServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var AccountServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateAccount", Handler: unaryHandler(MethodCreateAccount, AccountServiceServer.CreateAccount)},
		{MethodName: "ConfirmAccount", Handler: unaryHandler(MethodConfirmAccount, AccountServiceServer.ConfirmAccount)},
		{MethodName: "Login", Handler: unaryHandler(MethodLogin, AccountServiceServer.Login)},
		{MethodName: "RequestCode", Handler: unaryHandler(MethodRequestCode, AccountServiceServer.RequestCode)},
		{MethodName: "ForgotPassword", Handler: unaryHandler(MethodForgotPassword, AccountServiceServer.ForgotPassword)},
		{MethodName: "ValidateToken", Handler: unaryHandler(MethodValidateToken, AccountServiceServer.ValidateToken)},
		{MethodName: "UpdatePassword", Handler: unaryHandler(MethodUpdatePassword, AccountServiceServer.UpdatePassword)},
		{MethodName: "Ping", Handler: unaryHandler(MethodPing, AccountServiceServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "authkeeper/account.json",
}

// AccountServiceClient is the client API of the account service.
type AccountServiceClient interface {
	CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*MessageResponse, error)
	ConfirmAccount(ctx context.Context, in *ConfirmAccountRequest, opts ...grpc.CallOption) (*MessageResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RequestCode(ctx context.Context, in *RequestCodeRequest, opts ...grpc.CallOption) (*MessageResponse, error)
	ForgotPassword(ctx context.Context, in *ForgotPasswordRequest, opts ...grpc.CallOption) (*MessageResponse, error)
	ValidateToken(ctx context.Context, in *ValidateTokenRequest, opts ...grpc.CallOption) (*MessageResponse, error)
	UpdatePassword(ctx context.Context, in *UpdatePasswordRequest, opts ...grpc.CallOption) (*MessageResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*MessageResponse, error)
}

type accountServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAccountServiceClient returns a client that always uses the JSON codec.
func NewAccountServiceClient(cc grpc.ClientConnInterface) AccountServiceClient {
	return &accountServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accountServiceClient) CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, MethodCreateAccount, in, opts)
}

func (c *accountServiceClient) ConfirmAccount(ctx context.Context, in *ConfirmAccountRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, MethodConfirmAccount, in, opts)
}

func (c *accountServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *accountServiceClient) RequestCode(ctx context.Context, in *RequestCodeRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, MethodRequestCode, in, opts)
}

func (c *accountServiceClient) ForgotPassword(ctx context.Context, in *ForgotPasswordRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, MethodForgotPassword, in, opts)
}

func (c *accountServiceClient) ValidateToken(ctx context.Context, in *ValidateTokenRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, MethodValidateToken, in, opts)
}

func (c *accountServiceClient) UpdatePassword(ctx context.Context, in *UpdatePasswordRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, MethodUpdatePassword, in, opts)
}

func (c *accountServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, MethodPing, in, opts)
}
