package repository

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	"github.com/euscan/euscanwww/utils"
	"github.com/euscan/euscanwww/view"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func NewWorldFileRepositoryMinio(creds view.MinioStorageCreds) (WorldFileRepository, error) {
	endpoint, err := url.Parse(creds.Endpoint)
	if err != nil {
		return nil, err
	}
	host := endpoint.Host
	if host == "" {
		host = creds.Endpoint
	}
	client, err := minio.New(host, &minio.Options{
		Creds:     credentials.NewStaticV4(creds.AccessKeyId, creds.SecretAccessKey, ""),
		Secure:    endpoint.Scheme != "http",
		Transport: &http.Transport{TLSClientConfig: utils.GetTLSConfig([]byte(creds.Crt))},
	})
	if err != nil {
		return nil, err
	}
	return &worldFileRepositoryMinioImpl{client: client, bucketName: creds.BucketName}, nil
}

type worldFileRepositoryMinioImpl struct {
	client     *minio.Client
	bucketName string
}

func (w worldFileRepositoryMinioImpl) EnsureBucket(ctx context.Context) error {
	exists, err := w.client.BucketExists(ctx, w.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return w.client.MakeBucket(ctx, w.bucketName, minio.MakeBucketOptions{})
}

func (w worldFileRepositoryMinioImpl) FileExists(ctx context.Context, key string) (bool, error) {
	_, err := w.client.StatObject(ctx, w.bucketName, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return false, nil
	}
	return false, err
}

func (w worldFileRepositoryMinioImpl) PutFile(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := w.client.PutObject(ctx, w.bucketName, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}
