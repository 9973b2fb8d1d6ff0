// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-face-keeper/models"
	"google.golang.org/grpc"
)

// Fully-qualified method names of the faceid.v1.FaceIdentity service.
const (
	ServiceName = "faceid.v1.FaceIdentity"

	EnrollMethod = "/" + ServiceName + "/Enroll"
	VerifyMethod = "/" + ServiceName + "/Verify"
	StatusMethod = "/" + ServiceName + "/Status"
)

// StatusRequest is the empty request of Status. The account comes from the
// bearer token.
type StatusRequest struct{}

// FaceIdentityServer is the server API of faceid.v1.FaceIdentity.
type FaceIdentityServer interface {
	Enroll(ctx context.Context, request *models.FaceRequest) (*models.VerificationResult, error)
	Verify(ctx context.Context, request *models.FaceRequest) (*models.VerificationResult, error)
	Status(ctx context.Context, request *StatusRequest) (*models.AccountStatus, error)
}

// RegisterFaceIdentityServer registers srv on s.
func RegisterFaceIdentityServer(s grpc.ServiceRegistrar, srv FaceIdentityServer) {
	s.RegisterService(&faceIdentityServiceDesc, srv)
}

var faceIdentityServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FaceIdentityServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Enroll", Handler: enrollHandler},
		{MethodName: "Verify", Handler: verifyHandler},
		{MethodName: "Status", Handler: statusHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "faceid/v1/face_identity",
}

func enrollHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.FaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceIdentityServer).Enroll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: EnrollMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceIdentityServer).Enroll(ctx, req.(*models.FaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func verifyHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.FaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceIdentityServer).Verify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: VerifyMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceIdentityServer).Verify(ctx, req.(*models.FaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func statusHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceIdentityServer).Status(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: StatusMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceIdentityServer).Status(ctx, req.(*StatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FaceIdentityClient calls faceid.v1.FaceIdentity over cc. Connections must
// use [Codec], e.g. grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{})).
type FaceIdentityClient struct {
	cc grpc.ClientConnInterface
}

func NewFaceIdentityClient(cc grpc.ClientConnInterface) *FaceIdentityClient {
	return &FaceIdentityClient{cc: cc}
}

func (c *FaceIdentityClient) Enroll(ctx context.Context, in *models.FaceRequest, opts ...grpc.CallOption) (*models.VerificationResult, error) {
	out := new(models.VerificationResult)
	if err := c.cc.Invoke(ctx, EnrollMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FaceIdentityClient) Verify(ctx context.Context, in *models.FaceRequest, opts ...grpc.CallOption) (*models.VerificationResult, error) {
	out := new(models.VerificationResult)
	if err := c.cc.Invoke(ctx, VerifyMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FaceIdentityClient) Status(ctx context.Context, opts ...grpc.CallOption) (*models.AccountStatus, error) {
	out := new(models.AccountStatus)
	if err := c.cc.Invoke(ctx, StatusMethod, &StatusRequest{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
