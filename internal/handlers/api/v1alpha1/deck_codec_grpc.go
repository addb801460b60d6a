package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Full method names for DeckCodecService. Requests and responses are
// google.protobuf.Struct documents shaped like the JSON payloads of the REST API.
const (
	DeckCodecServiceName = "deckbuilder.api.v1alpha1.DeckCodecService"

	DeckCodecService_EncodeDeck_FullMethodName = "/" + DeckCodecServiceName + "/EncodeDeck"
	DeckCodecService_DecodeDeck_FullMethodName = "/" + DeckCodecServiceName + "/DecodeDeck"
	DeckCodecService_EncodeTeam_FullMethodName = "/" + DeckCodecServiceName + "/EncodeTeam"
	DeckCodecService_DecodeTeam_FullMethodName = "/" + DeckCodecServiceName + "/DecodeTeam"
)

// DeckCodecServiceServer is the server API for DeckCodecService
type DeckCodecServiceServer interface {
	EncodeDeck(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DecodeDeck(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EncodeTeam(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DecodeTeam(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterDeckCodecServiceServer registers srv on s
func RegisterDeckCodecServiceServer(s grpc.ServiceRegistrar, srv DeckCodecServiceServer) {
	s.RegisterService(&DeckCodecService_ServiceDesc, srv)
}

type structMethod func(DeckCodecServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call structMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(DeckCodecServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(DeckCodecServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// DeckCodecService_ServiceDesc is the grpc.ServiceDesc for DeckCodecService
var DeckCodecService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: DeckCodecServiceName,
	HandlerType: (*DeckCodecServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "EncodeDeck",
			Handler:    unaryHandler(DeckCodecService_EncodeDeck_FullMethodName, DeckCodecServiceServer.EncodeDeck),
		},
		{
			MethodName: "DecodeDeck",
			Handler:    unaryHandler(DeckCodecService_DecodeDeck_FullMethodName, DeckCodecServiceServer.DecodeDeck),
		},
		{
			MethodName: "EncodeTeam",
			Handler:    unaryHandler(DeckCodecService_EncodeTeam_FullMethodName, DeckCodecServiceServer.EncodeTeam),
		},
		{
			MethodName: "DecodeTeam",
			Handler:    unaryHandler(DeckCodecService_DecodeTeam_FullMethodName, DeckCodecServiceServer.DecodeTeam),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "deckbuilder/api/v1alpha1/deck_codec.proto",
}

// DeckCodecServiceClient is the client API for DeckCodecService
type DeckCodecServiceClient interface {
	EncodeDeck(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DecodeDeck(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	EncodeTeam(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DecodeTeam(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type deckCodecServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDeckCodecServiceClient creates a client on cc
func NewDeckCodecServiceClient(cc grpc.ClientConnInterface) DeckCodecServiceClient {
	return &deckCodecServiceClient{cc}
}

func (c *deckCodecServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deckCodecServiceClient) EncodeDeck(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DeckCodecService_EncodeDeck_FullMethodName, in, opts...)
}

func (c *deckCodecServiceClient) DecodeDeck(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DeckCodecService_DecodeDeck_FullMethodName, in, opts...)
}

func (c *deckCodecServiceClient) EncodeTeam(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DeckCodecService_EncodeTeam_FullMethodName, in, opts...)
}

func (c *deckCodecServiceClient) DecodeTeam(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DeckCodecService_DecodeTeam_FullMethodName, in, opts...)
}
