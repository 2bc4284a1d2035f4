package draft

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified name of the draft authoring service.
// Every method exchanges google.protobuf.Struct messages whose fields
// follow the JSON shape of the request and reply types in messages.go.
const ServiceName = "draft.v1.DraftService"

// DraftServiceServer is the server API of the draft authoring service.
type DraftServiceServer interface {
	StartDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListDrafts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetBasicInfo(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpsertTranslation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpsertPrice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetMainImage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearMainImage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AppendGalleryImage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveGalleryImage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetInventory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetAttributes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetVariations(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GenerateVariants(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateVariant(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetOrganization(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddTag(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveTag(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetActiveLanguage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetActiveCurrency(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetErrors(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ValidateDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DiscardDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CloseDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(DraftServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(DraftServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(DraftServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes DraftService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DraftServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("StartDraft", DraftServiceServer.StartDraft),
		unaryMethod("GetDraft", DraftServiceServer.GetDraft),
		unaryMethod("ListDrafts", DraftServiceServer.ListDrafts),
		unaryMethod("SetBasicInfo", DraftServiceServer.SetBasicInfo),
		unaryMethod("UpsertTranslation", DraftServiceServer.UpsertTranslation),
		unaryMethod("UpsertPrice", DraftServiceServer.UpsertPrice),
		unaryMethod("SetMainImage", DraftServiceServer.SetMainImage),
		unaryMethod("ClearMainImage", DraftServiceServer.ClearMainImage),
		unaryMethod("AppendGalleryImage", DraftServiceServer.AppendGalleryImage),
		unaryMethod("RemoveGalleryImage", DraftServiceServer.RemoveGalleryImage),
		unaryMethod("SetInventory", DraftServiceServer.SetInventory),
		unaryMethod("SetAttributes", DraftServiceServer.SetAttributes),
		unaryMethod("SetVariations", DraftServiceServer.SetVariations),
		unaryMethod("GenerateVariants", DraftServiceServer.GenerateVariants),
		unaryMethod("UpdateVariant", DraftServiceServer.UpdateVariant),
		unaryMethod("SetOrganization", DraftServiceServer.SetOrganization),
		unaryMethod("AddTag", DraftServiceServer.AddTag),
		unaryMethod("RemoveTag", DraftServiceServer.RemoveTag),
		unaryMethod("SetActiveLanguage", DraftServiceServer.SetActiveLanguage),
		unaryMethod("SetActiveCurrency", DraftServiceServer.SetActiveCurrency),
		unaryMethod("SetErrors", DraftServiceServer.SetErrors),
		unaryMethod("ValidateDraft", DraftServiceServer.ValidateDraft),
		unaryMethod("SubmitDraft", DraftServiceServer.SubmitDraft),
		unaryMethod("DiscardDraft", DraftServiceServer.DiscardDraft),
		unaryMethod("CloseDraft", DraftServiceServer.CloseDraft),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "draft/v1/draft.proto",
}

// RegisterDraftServiceServer registers srv on s.
func RegisterDraftServiceServer(s grpc.ServiceRegistrar, srv DraftServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client calls DraftService methods by name.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with a raw Struct request.
func (c *Client) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Invoke encodes req, calls method and decodes the reply into reply.
// reply may be nil when the caller ignores the response.
func (c *Client) Invoke(ctx context.Context, method string, req, reply interface{}, opts ...grpc.CallOption) error {
	in, err := encodeStruct(req)
	if err != nil {
		return err
	}
	out, err := c.Call(ctx, method, in, opts...)
	if err != nil {
		return err
	}
	if reply == nil {
		return nil
	}
	return decodeStruct(out, reply)
}
