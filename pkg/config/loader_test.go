// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package config

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/raywall/wiki-service/pkg/awsclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockS3Loader struct {
	GetObjectFunc func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

func (m *MockS3Loader) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return m.GetObjectFunc(ctx, params, optFns...)
}

type MockSSMLoader struct {
	GetParameterFunc func(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

func (m *MockSSMLoader) GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	return m.GetParameterFunc(ctx, params, optFns...)
}

const localYAML = `
service:
  name: "wiki-local"
  runtime: "local"
  port: 8000
  route: "/"
  timeout: "5s"
  cors:
    allowed_origins: ["http://localhost:3000"]
  logging:
    level: "debug"
    format: "console"
  metrics:
    datadog:
      enabled: false
store:
  region: "ap-northeast-1"
  endpoint: "http://localhost:8001"
  table: "wiki"
  access_key_id: "local"
  secret_access_key: "local"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// --- Testes ---

func TestLoader_Load_Local(t *testing.T) {
	path := writeTemp(t, localYAML)

	cfg, err := NewLoader(awsclient.Clients{}).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "wiki-local", cfg.Service.Name)
	assert.Equal(t, 8000, cfg.Service.Port)
	assert.Equal(t, 5*time.Second, cfg.Service.GetTimeout())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Service.CORS.AllowedOrigins)
	assert.Equal(t, "console", cfg.Service.Logging.Format)
	assert.Equal(t, "http://localhost:8001", cfg.Store.Endpoint)

	// defaults de campos ausentes no YAML
	assert.Equal(t, "id", cfg.Store.HashKey)
	assert.Equal(t, "owner", cfg.Store.OwnerIndex)

	// file:// também é aceito
	cfg2, err := NewLoader(awsclient.Clients{}).Load(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.Equal(t, cfg, cfg2)
}

func TestLoader_Load_EnvOverridesYAML(t *testing.T) {
	path := writeTemp(t, localYAML)
	t.Setenv("DYNAMODB_TABLE_NAME", "wiki-override")
	t.Setenv("PORT", "9000")

	cfg, err := NewLoader(awsclient.Clients{}).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "wiki-override", cfg.Store.Table)
	assert.Equal(t, 9000, cfg.Service.Port)
}

func TestLoader_Load_EnvOnly(t *testing.T) {
	// vazio equivale a não definido
	t.Setenv("AWS_REGION", "")
	t.Setenv("DYNAMODB_TABLE_NAME", "")

	cfg, err := NewLoader(awsclient.Clients{}).Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "wiki-service", cfg.Service.Name)
	assert.Equal(t, "local", cfg.Service.Runtime)
	assert.Equal(t, "/", cfg.Service.Route)
	assert.Equal(t, "ap-northeast-1", cfg.Store.Region)
	assert.Equal(t, "wiki", cfg.Store.Table)
	assert.Equal(t, "info", cfg.Service.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.Service.CORS.AllowedOrigins)
}

func TestLoader_Load_Placeholders(t *testing.T) {
	t.Setenv("WIKI_TABLE_SUFFIX", "qa")
	path := writeTemp(t, strings.Replace(localYAML, `table: "wiki"`, `table: "wiki-${env.WIKI_TABLE_SUFFIX}"`, 1))

	cfg, err := NewLoader(awsclient.Clients{}).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "wiki-qa", cfg.Store.Table)
}

func TestLoader_Load_S3(t *testing.T) {
	client := &MockS3Loader{
		GetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			if aws.ToString(params.Bucket) != "config-bucket" || aws.ToString(params.Key) != "wiki/config.yaml" {
				return nil, errors.New("NoSuchKey")
			}
			return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(localYAML))}, nil
		},
	}

	cfg, err := NewLoader(awsclient.Clients{S3: client}).Load(context.Background(), "s3://config-bucket/wiki/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "wiki-local", cfg.Service.Name)

	_, err = NewLoader(awsclient.Clients{S3: client}).Load(context.Background(), "s3://config-bucket/other.yaml")
	assert.ErrorContains(t, err, "NoSuchKey")
}

func TestLoader_Load_SSM(t *testing.T) {
	client := &MockSSMLoader{
		GetParameterFunc: func(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
			assert.Equal(t, "/wiki/config", aws.ToString(params.Name))
			return &ssm.GetParameterOutput{Parameter: &ssmtypes.Parameter{Value: aws.String(localYAML)}}, nil
		},
	}

	cfg, err := NewLoader(awsclient.Clients{SSM: client}).Load(context.Background(), "ssm:///wiki/config")
	require.NoError(t, err)
	assert.Equal(t, "wiki-local", cfg.Service.Name)
}

func TestLoader_Load_Errors(t *testing.T) {
	loader := NewLoader(awsclient.Clients{})
	ctx := context.Background()

	_, err := loader.Load(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "falha leitura config")

	_, err = loader.Load(ctx, writeTemp(t, "service: [unclosed"))
	assert.ErrorContains(t, err, "YAML malformado")

	_, err = loader.Load(ctx, writeTemp(t, "service:\n  runtime: ecs\n"))
	assert.ErrorContains(t, err, "validação da configuração falhou")

	_, err = loader.Load(ctx, "s3://bucket/key")
	assert.ErrorContains(t, err, "cliente S3 não configurado")
}
