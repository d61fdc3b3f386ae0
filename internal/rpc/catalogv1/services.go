package catalogv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ProductServiceName        = "omnipos.catalog.v1.ProductService"
	ProductVariantServiceName = "omnipos.catalog.v1.ProductVariantService"
	FacetServiceName          = "omnipos.catalog.v1.FacetService"
	PricingServiceName        = "omnipos.catalog.v1.PricingService"
)

// unary adapts a typed method to grpc.MethodHandler, running the server's
// interceptor chain when one is installed.
func unary[S any, Req any, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func method[S any, Req any, Resp any](service, name string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler:    unary(fullMethod(service, name), call),
	}
}

func fullMethod(service, name string) string {
	return "/" + service + "/" + name
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, service, name string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(service, name), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ProductService

type ProductServiceServer interface {
	CreateProduct(context.Context, *CreateProductRequest) (*ProductResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*ProductResponse, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	CreateOptionGroup(context.Context, *CreateOptionGroupRequest) (*OptionGroupResponse, error)
	AddOptionGroupToProduct(context.Context, *AddOptionGroupToProductRequest) (*ProductResponse, error)
}

var ProductServiceDesc = grpc.ServiceDesc{
	ServiceName: ProductServiceName,
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method(ProductServiceName, "CreateProduct", ProductServiceServer.CreateProduct),
		method(ProductServiceName, "GetProduct", ProductServiceServer.GetProduct),
		method(ProductServiceName, "ListProducts", ProductServiceServer.ListProducts),
		method(ProductServiceName, "CreateOptionGroup", ProductServiceServer.CreateOptionGroup),
		method(ProductServiceName, "AddOptionGroupToProduct", ProductServiceServer.AddOptionGroupToProduct),
	},
	Metadata: "omnipos/catalog/v1/product.json",
}

func RegisterProductServiceServer(s grpc.ServiceRegistrar, srv ProductServiceServer) {
	s.RegisterService(&ProductServiceDesc, srv)
}

type ProductServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProductServiceClient(cc grpc.ClientConnInterface) *ProductServiceClient {
	return &ProductServiceClient{cc: cc}
}

func (c *ProductServiceClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[ProductResponse](ctx, c.cc, ProductServiceName, "CreateProduct", in, opts)
}

func (c *ProductServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[ProductResponse](ctx, c.cc, ProductServiceName, "GetProduct", in, opts)
}

func (c *ProductServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsResponse](ctx, c.cc, ProductServiceName, "ListProducts", in, opts)
}

func (c *ProductServiceClient) CreateOptionGroup(ctx context.Context, in *CreateOptionGroupRequest, opts ...grpc.CallOption) (*OptionGroupResponse, error) {
	return invoke[OptionGroupResponse](ctx, c.cc, ProductServiceName, "CreateOptionGroup", in, opts)
}

func (c *ProductServiceClient) AddOptionGroupToProduct(ctx context.Context, in *AddOptionGroupToProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[ProductResponse](ctx, c.cc, ProductServiceName, "AddOptionGroupToProduct", in, opts)
}

// ProductVariantService

type ProductVariantServiceServer interface {
	GetVariant(context.Context, *GetVariantRequest) (*VariantResponse, error)
	ListVariants(context.Context, *ListVariantsRequest) (*ListVariantsResponse, error)
	CreateVariant(context.Context, *CreateVariantRequest) (*VariantResponse, error)
	UpdateVariant(context.Context, *UpdateVariantRequest) (*VariantResponse, error)
	GenerateVariants(context.Context, *GenerateVariantsRequest) (*VariantsResponse, error)
	AddFacetValuesToVariants(context.Context, *AddFacetValuesToVariantsRequest) (*VariantsResponse, error)
}

var ProductVariantServiceDesc = grpc.ServiceDesc{
	ServiceName: ProductVariantServiceName,
	HandlerType: (*ProductVariantServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method(ProductVariantServiceName, "GetVariant", ProductVariantServiceServer.GetVariant),
		method(ProductVariantServiceName, "ListVariants", ProductVariantServiceServer.ListVariants),
		method(ProductVariantServiceName, "CreateVariant", ProductVariantServiceServer.CreateVariant),
		method(ProductVariantServiceName, "UpdateVariant", ProductVariantServiceServer.UpdateVariant),
		method(ProductVariantServiceName, "GenerateVariants", ProductVariantServiceServer.GenerateVariants),
		method(ProductVariantServiceName, "AddFacetValuesToVariants", ProductVariantServiceServer.AddFacetValuesToVariants),
	},
	Metadata: "omnipos/catalog/v1/product_variant.json",
}

func RegisterProductVariantServiceServer(s grpc.ServiceRegistrar, srv ProductVariantServiceServer) {
	s.RegisterService(&ProductVariantServiceDesc, srv)
}

type ProductVariantServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProductVariantServiceClient(cc grpc.ClientConnInterface) *ProductVariantServiceClient {
	return &ProductVariantServiceClient{cc: cc}
}

func (c *ProductVariantServiceClient) GetVariant(ctx context.Context, in *GetVariantRequest, opts ...grpc.CallOption) (*VariantResponse, error) {
	return invoke[VariantResponse](ctx, c.cc, ProductVariantServiceName, "GetVariant", in, opts)
}

func (c *ProductVariantServiceClient) ListVariants(ctx context.Context, in *ListVariantsRequest, opts ...grpc.CallOption) (*ListVariantsResponse, error) {
	return invoke[ListVariantsResponse](ctx, c.cc, ProductVariantServiceName, "ListVariants", in, opts)
}

func (c *ProductVariantServiceClient) CreateVariant(ctx context.Context, in *CreateVariantRequest, opts ...grpc.CallOption) (*VariantResponse, error) {
	return invoke[VariantResponse](ctx, c.cc, ProductVariantServiceName, "CreateVariant", in, opts)
}

func (c *ProductVariantServiceClient) UpdateVariant(ctx context.Context, in *UpdateVariantRequest, opts ...grpc.CallOption) (*VariantResponse, error) {
	return invoke[VariantResponse](ctx, c.cc, ProductVariantServiceName, "UpdateVariant", in, opts)
}

func (c *ProductVariantServiceClient) GenerateVariants(ctx context.Context, in *GenerateVariantsRequest, opts ...grpc.CallOption) (*VariantsResponse, error) {
	return invoke[VariantsResponse](ctx, c.cc, ProductVariantServiceName, "GenerateVariants", in, opts)
}

func (c *ProductVariantServiceClient) AddFacetValuesToVariants(ctx context.Context, in *AddFacetValuesToVariantsRequest, opts ...grpc.CallOption) (*VariantsResponse, error) {
	return invoke[VariantsResponse](ctx, c.cc, ProductVariantServiceName, "AddFacetValuesToVariants", in, opts)
}

// FacetService

type FacetServiceServer interface {
	CreateFacet(context.Context, *CreateFacetRequest) (*FacetResponse, error)
	GetFacet(context.Context, *GetFacetRequest) (*FacetResponse, error)
	ListFacets(context.Context, *ListFacetsRequest) (*ListFacetsResponse, error)
	CreateFacetValue(context.Context, *CreateFacetValueRequest) (*FacetValueResponse, error)
}

var FacetServiceDesc = grpc.ServiceDesc{
	ServiceName: FacetServiceName,
	HandlerType: (*FacetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method(FacetServiceName, "CreateFacet", FacetServiceServer.CreateFacet),
		method(FacetServiceName, "GetFacet", FacetServiceServer.GetFacet),
		method(FacetServiceName, "ListFacets", FacetServiceServer.ListFacets),
		method(FacetServiceName, "CreateFacetValue", FacetServiceServer.CreateFacetValue),
	},
	Metadata: "omnipos/catalog/v1/facet.json",
}

func RegisterFacetServiceServer(s grpc.ServiceRegistrar, srv FacetServiceServer) {
	s.RegisterService(&FacetServiceDesc, srv)
}

type FacetServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFacetServiceClient(cc grpc.ClientConnInterface) *FacetServiceClient {
	return &FacetServiceClient{cc: cc}
}

func (c *FacetServiceClient) CreateFacet(ctx context.Context, in *CreateFacetRequest, opts ...grpc.CallOption) (*FacetResponse, error) {
	return invoke[FacetResponse](ctx, c.cc, FacetServiceName, "CreateFacet", in, opts)
}

func (c *FacetServiceClient) GetFacet(ctx context.Context, in *GetFacetRequest, opts ...grpc.CallOption) (*FacetResponse, error) {
	return invoke[FacetResponse](ctx, c.cc, FacetServiceName, "GetFacet", in, opts)
}

func (c *FacetServiceClient) ListFacets(ctx context.Context, in *ListFacetsRequest, opts ...grpc.CallOption) (*ListFacetsResponse, error) {
	return invoke[ListFacetsResponse](ctx, c.cc, FacetServiceName, "ListFacets", in, opts)
}

func (c *FacetServiceClient) CreateFacetValue(ctx context.Context, in *CreateFacetValueRequest, opts ...grpc.CallOption) (*FacetValueResponse, error) {
	return invoke[FacetValueResponse](ctx, c.cc, FacetServiceName, "CreateFacetValue", in, opts)
}

// PricingService

type PricingServiceServer interface {
	SetChannelPrice(context.Context, *SetChannelPriceRequest) (*ChannelPriceResponse, error)
	ListPriceChanges(context.Context, *ListPriceChangesRequest) (*ListPriceChangesResponse, error)
}

var PricingServiceDesc = grpc.ServiceDesc{
	ServiceName: PricingServiceName,
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method(PricingServiceName, "SetChannelPrice", PricingServiceServer.SetChannelPrice),
		method(PricingServiceName, "ListPriceChanges", PricingServiceServer.ListPriceChanges),
	},
	Metadata: "omnipos/catalog/v1/pricing.json",
}

func RegisterPricingServiceServer(s grpc.ServiceRegistrar, srv PricingServiceServer) {
	s.RegisterService(&PricingServiceDesc, srv)
}

type PricingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPricingServiceClient(cc grpc.ClientConnInterface) *PricingServiceClient {
	return &PricingServiceClient{cc: cc}
}

func (c *PricingServiceClient) SetChannelPrice(ctx context.Context, in *SetChannelPriceRequest, opts ...grpc.CallOption) (*ChannelPriceResponse, error) {
	return invoke[ChannelPriceResponse](ctx, c.cc, PricingServiceName, "SetChannelPrice", in, opts)
}

func (c *PricingServiceClient) ListPriceChanges(ctx context.Context, in *ListPriceChangesRequest, opts ...grpc.CallOption) (*ListPriceChangesResponse, error) {
	return invoke[ListPriceChangesResponse](ctx, c.cc, PricingServiceName, "ListPriceChanges", in, opts)
}
