package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/jhoicas/Empresas-api/pkg/config"
)

// S3API subconjunto del cliente S3 que usa el backend.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	CopyObject(ctx context.Context, in *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
}

// S3 guarda los logos como objetos de un bucket, con la misma clave que el backend de archivos.
type S3 struct {
	client S3API
	bucket string
}

// NewS3 construye el cliente a partir de la configuración. Endpoint permite usar MinIO u otros compatibles.
func NewS3(cfg config.S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket S3 requerido")
	}
	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: cfg.UsePathStyle,
	}
	if cfg.AccessKeyID != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return NewS3WithClient(s3.New(opts), cfg.Bucket), nil
}

// NewS3WithClient permite inyectar el cliente (tests).
func NewS3WithClient(client S3API, bucket string) *S3 {
	return &S3{client: client, bucket: bucket}
}

// Stage sube el logo con una clave provisional y devuelve la definitiva y la provisional.
func (s *S3) Stage(ctx context.Context, ruc, filename string, data []byte) (string, string, error) {
	key, err := LogoKey(ruc, filename)
	if err != nil {
		return "", "", err
	}
	staged := stagingKey(key)
	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(staged),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		in.ContentType = aws.String(ct)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", "", fmt.Errorf("subir logo a S3: %w", err)
	}
	return key, staged, nil
}

// Promote copia el objeto provisional a su clave definitiva y borra el provisional.
// S3 no tiene rename; si el borrado falla queda un objeto .tmp huérfano.
func (s *S3) Promote(ctx context.Context, staged, key string) error {
	if err := validKey(staged); err != nil {
		return err
	}
	if err := validKey(key); err != nil {
		return err
	}
	source := (&url.URL{Path: s.bucket + "/" + staged}).EscapedPath()
	if _, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		Key:        aws.String(key),
		CopySource: aws.String(source),
	}); err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return ErrNotFound
		}
		return fmt.Errorf("publicar logo en S3: %w", err)
	}
	_ = s.Delete(ctx, staged)
	return nil
}

// Retrieve descarga el logo. ErrNotFound si el objeto no existe.
func (s *S3) Retrieve(ctx context.Context, key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("descargar logo de S3: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("leer logo de S3: %w", err)
	}
	return data, nil
}

// Delete borra el objeto. S3 no falla si la clave no existe.
func (s *S3) Delete(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("borrar logo de S3: %w", err)
	}
	return nil
}
