package mocks

import (
	"context"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client.
// Option functions are not recorded.
type Client struct {
	mock.Mock
}

func (m *Client) PutObject(ctx context.Context, request *oss.PutObjectRequest, optFns ...func(*oss.Options)) (*oss.PutObjectResult, error) {
	args := m.Called(ctx, request)
	if res, ok := args.Get(0).(*oss.PutObjectResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) PutObjectFromFile(ctx context.Context, request *oss.PutObjectRequest, filePath string, optFns ...func(*oss.Options)) (*oss.PutObjectResult, error) {
	args := m.Called(ctx, request, filePath)
	if res, ok := args.Get(0).(*oss.PutObjectResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetObject(ctx context.Context, request *oss.GetObjectRequest, optFns ...func(*oss.Options)) (*oss.GetObjectResult, error) {
	args := m.Called(ctx, request)
	if res, ok := args.Get(0).(*oss.GetObjectResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CopyObject(ctx context.Context, request *oss.CopyObjectRequest, optFns ...func(*oss.Options)) (*oss.CopyObjectResult, error) {
	args := m.Called(ctx, request)
	if res, ok := args.Get(0).(*oss.CopyObjectResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) DeleteObject(ctx context.Context, request *oss.DeleteObjectRequest, optFns ...func(*oss.Options)) (*oss.DeleteObjectResult, error) {
	args := m.Called(ctx, request)
	if res, ok := args.Get(0).(*oss.DeleteObjectResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) DeleteMultipleObjects(ctx context.Context, request *oss.DeleteMultipleObjectsRequest, optFns ...func(*oss.Options)) (*oss.DeleteMultipleObjectsResult, error) {
	args := m.Called(ctx, request)
	if res, ok := args.Get(0).(*oss.DeleteMultipleObjectsResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListObjects(ctx context.Context, request *oss.ListObjectsRequest, optFns ...func(*oss.Options)) (*oss.ListObjectsResult, error) {
	args := m.Called(ctx, request)
	if res, ok := args.Get(0).(*oss.ListObjectsResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) HeadObject(ctx context.Context, request *oss.HeadObjectRequest, optFns ...func(*oss.Options)) (*oss.HeadObjectResult, error) {
	args := m.Called(ctx, request)
	if res, ok := args.Get(0).(*oss.HeadObjectResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetObjectAcl(ctx context.Context, request *oss.GetObjectAclRequest, optFns ...func(*oss.Options)) (*oss.GetObjectAclResult, error) {
	args := m.Called(ctx, request)
	if res, ok := args.Get(0).(*oss.GetObjectAclResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) PutObjectAcl(ctx context.Context, request *oss.PutObjectAclRequest, optFns ...func(*oss.Options)) (*oss.PutObjectAclResult, error) {
	args := m.Called(ctx, request)
	if res, ok := args.Get(0).(*oss.PutObjectAclResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) IsObjectExist(ctx context.Context, bucket string, key string, optFns ...func(*oss.IsObjectExistOptions)) (bool, error) {
	args := m.Called(ctx, bucket, key)
	return args.Bool(0), args.Error(1)
}

func (m *Client) Presign(ctx context.Context, request any, optFns ...func(*oss.PresignOptions)) (*oss.PresignResult, error) {
	args := m.Called(ctx, request)
	if res, ok := args.Get(0).(*oss.PresignResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}
