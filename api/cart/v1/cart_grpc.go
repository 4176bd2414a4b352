package cartv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "cart.v1.CartService"

const (
	CartService_GetCart_FullMethodName             = "/cart.v1.CartService/GetCart"
	CartService_CreateCart_FullMethodName          = "/cart.v1.CartService/CreateCart"
	CartService_GetOrCreateCart_FullMethodName     = "/cart.v1.CartService/GetOrCreateCart"
	CartService_AddLines_FullMethodName            = "/cart.v1.CartService/AddLines"
	CartService_RemoveLines_FullMethodName         = "/cart.v1.CartService/RemoveLines"
	CartService_UpdateLines_FullMethodName         = "/cart.v1.CartService/UpdateLines"
	CartService_UpdateAttributes_FullMethodName    = "/cart.v1.CartService/UpdateAttributes"
	CartService_UpdateBuyerIdentity_FullMethodName = "/cart.v1.CartService/UpdateBuyerIdentity"
	CartService_UpdateDiscountCodes_FullMethodName = "/cart.v1.CartService/UpdateDiscountCodes"
	CartService_UpdateNote_FullMethodName          = "/cart.v1.CartService/UpdateNote"
)

type CartServiceClient interface {
	GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*Cart, error)
	CreateCart(ctx context.Context, in *CreateCartRequest, opts ...grpc.CallOption) (*Cart, error)
	GetOrCreateCart(ctx context.Context, in *GetOrCreateCartRequest, opts ...grpc.CallOption) (*Cart, error)
	AddLines(ctx context.Context, in *AddLinesRequest, opts ...grpc.CallOption) (*Cart, error)
	RemoveLines(ctx context.Context, in *RemoveLinesRequest, opts ...grpc.CallOption) (*Cart, error)
	UpdateLines(ctx context.Context, in *UpdateLinesRequest, opts ...grpc.CallOption) (*Cart, error)
	UpdateAttributes(ctx context.Context, in *UpdateAttributesRequest, opts ...grpc.CallOption) (*Cart, error)
	UpdateBuyerIdentity(ctx context.Context, in *UpdateBuyerIdentityRequest, opts ...grpc.CallOption) (*Cart, error)
	UpdateDiscountCodes(ctx context.Context, in *UpdateDiscountCodesRequest, opts ...grpc.CallOption) (*Cart, error)
	UpdateNote(ctx context.Context, in *UpdateNoteRequest, opts ...grpc.CallOption) (*Cart, error)
}

type cartServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCartServiceClient(cc grpc.ClientConnInterface) CartServiceClient {
	return &cartServiceClient{cc: cc}
}

func (c *cartServiceClient) invoke(ctx context.Context, method string, in any, opts []grpc.CallOption) (*Cart, error) {
	out := new(Cart)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cartServiceClient) GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_GetCart_FullMethodName, in, opts)
}

func (c *cartServiceClient) CreateCart(ctx context.Context, in *CreateCartRequest, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_CreateCart_FullMethodName, in, opts)
}

func (c *cartServiceClient) GetOrCreateCart(ctx context.Context, in *GetOrCreateCartRequest, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_GetOrCreateCart_FullMethodName, in, opts)
}

func (c *cartServiceClient) AddLines(ctx context.Context, in *AddLinesRequest, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_AddLines_FullMethodName, in, opts)
}

func (c *cartServiceClient) RemoveLines(ctx context.Context, in *RemoveLinesRequest, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_RemoveLines_FullMethodName, in, opts)
}

func (c *cartServiceClient) UpdateLines(ctx context.Context, in *UpdateLinesRequest, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_UpdateLines_FullMethodName, in, opts)
}

func (c *cartServiceClient) UpdateAttributes(ctx context.Context, in *UpdateAttributesRequest, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_UpdateAttributes_FullMethodName, in, opts)
}

func (c *cartServiceClient) UpdateBuyerIdentity(ctx context.Context, in *UpdateBuyerIdentityRequest, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_UpdateBuyerIdentity_FullMethodName, in, opts)
}

func (c *cartServiceClient) UpdateDiscountCodes(ctx context.Context, in *UpdateDiscountCodesRequest, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_UpdateDiscountCodes_FullMethodName, in, opts)
}

func (c *cartServiceClient) UpdateNote(ctx context.Context, in *UpdateNoteRequest, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_UpdateNote_FullMethodName, in, opts)
}

type CartServiceServer interface {
	GetCart(context.Context, *GetCartRequest) (*Cart, error)
	CreateCart(context.Context, *CreateCartRequest) (*Cart, error)
	GetOrCreateCart(context.Context, *GetOrCreateCartRequest) (*Cart, error)
	AddLines(context.Context, *AddLinesRequest) (*Cart, error)
	RemoveLines(context.Context, *RemoveLinesRequest) (*Cart, error)
	UpdateLines(context.Context, *UpdateLinesRequest) (*Cart, error)
	UpdateAttributes(context.Context, *UpdateAttributesRequest) (*Cart, error)
	UpdateBuyerIdentity(context.Context, *UpdateBuyerIdentityRequest) (*Cart, error)
	UpdateDiscountCodes(context.Context, *UpdateDiscountCodesRequest) (*Cart, error)
	UpdateNote(context.Context, *UpdateNoteRequest) (*Cart, error)
	mustEmbedUnimplementedCartServiceServer()
}

// UnimplementedCartServiceServer must be embedded by implementations.
type UnimplementedCartServiceServer struct{}

func (UnimplementedCartServiceServer) GetCart(context.Context, *GetCartRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCart not implemented")
}
func (UnimplementedCartServiceServer) CreateCart(context.Context, *CreateCartRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCart not implemented")
}
func (UnimplementedCartServiceServer) GetOrCreateCart(context.Context, *GetOrCreateCartRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOrCreateCart not implemented")
}
func (UnimplementedCartServiceServer) AddLines(context.Context, *AddLinesRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method AddLines not implemented")
}
func (UnimplementedCartServiceServer) RemoveLines(context.Context, *RemoveLinesRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveLines not implemented")
}
func (UnimplementedCartServiceServer) UpdateLines(context.Context, *UpdateLinesRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateLines not implemented")
}
func (UnimplementedCartServiceServer) UpdateAttributes(context.Context, *UpdateAttributesRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateAttributes not implemented")
}
func (UnimplementedCartServiceServer) UpdateBuyerIdentity(context.Context, *UpdateBuyerIdentityRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateBuyerIdentity not implemented")
}
func (UnimplementedCartServiceServer) UpdateDiscountCodes(context.Context, *UpdateDiscountCodesRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateDiscountCodes not implemented")
}
func (UnimplementedCartServiceServer) UpdateNote(context.Context, *UpdateNoteRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateNote not implemented")
}
func (UnimplementedCartServiceServer) mustEmbedUnimplementedCartServiceServer() {}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodHandler.
func unaryHandler[Req any](fullMethod string, call func(CartServiceServer, context.Context, *Req) (*Cart, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CartServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CartServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var CartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetCart",
			Handler:    unaryHandler(CartService_GetCart_FullMethodName, CartServiceServer.GetCart),
		},
		{
			MethodName: "CreateCart",
			Handler:    unaryHandler(CartService_CreateCart_FullMethodName, CartServiceServer.CreateCart),
		},
		{
			MethodName: "GetOrCreateCart",
			Handler:    unaryHandler(CartService_GetOrCreateCart_FullMethodName, CartServiceServer.GetOrCreateCart),
		},
		{
			MethodName: "AddLines",
			Handler:    unaryHandler(CartService_AddLines_FullMethodName, CartServiceServer.AddLines),
		},
		{
			MethodName: "RemoveLines",
			Handler:    unaryHandler(CartService_RemoveLines_FullMethodName, CartServiceServer.RemoveLines),
		},
		{
			MethodName: "UpdateLines",
			Handler:    unaryHandler(CartService_UpdateLines_FullMethodName, CartServiceServer.UpdateLines),
		},
		{
			MethodName: "UpdateAttributes",
			Handler:    unaryHandler(CartService_UpdateAttributes_FullMethodName, CartServiceServer.UpdateAttributes),
		},
		{
			MethodName: "UpdateBuyerIdentity",
			Handler:    unaryHandler(CartService_UpdateBuyerIdentity_FullMethodName, CartServiceServer.UpdateBuyerIdentity),
		},
		{
			MethodName: "UpdateDiscountCodes",
			Handler:    unaryHandler(CartService_UpdateDiscountCodes_FullMethodName, CartServiceServer.UpdateDiscountCodes),
		},
		{
			MethodName: "UpdateNote",
			Handler:    unaryHandler(CartService_UpdateNote_FullMethodName, CartServiceServer.UpdateNote),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/cart/v1",
}
