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
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/raywall/wiki-service/envloader"
	"github.com/raywall/wiki-service/pkg/awsclient"
	"github.com/raywall/wiki-service/pkg/config/injector"
	"gopkg.in/yaml.v3"
)

// Loader suporta múltiplas fontes de configuração (arquivo local, S3, SSM).
type Loader struct {
	clients   awsclient.Clients
	validator *ConfigValidator
}

// NewLoader cria uma nova instância. Clientes nil só são exigidos quando a
// fonte ou algum placeholder precisa deles.
func NewLoader(clients awsclient.Clients) *Loader {
	return &Loader{
		clients:   clients,
		validator: NewValidator(),
	}
}

// Load lê a configuração da fonte, aplica as variáveis de ambiente, resolve
// placeholders e valida. Fonte vazia significa "apenas variáveis de ambiente".
//
// Fontes aceitas:
//   - caminho local ou file://caminho
//   - s3://bucket/chave
//   - ssm://nome-do-parametro (ex: ssm:///wiki/config)
func (l *Loader) Load(ctx context.Context, source string) (*ServiceConfig, error) {
	var cfg ServiceConfig

	if source != "" {
		rawData, err := l.read(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("falha leitura config (%s): %w", source, err)
		}
		if err := yaml.Unmarshal(rawData, &cfg); err != nil {
			return nil, fmt.Errorf("YAML malformado: %w", err)
		}
	}

	return l.finish(ctx, &cfg)
}

func (l *Loader) finish(ctx context.Context, cfg *ServiceConfig) (*ServiceConfig, error) {
	// 1. Environment (sobrescreve YAML, defaults preenchem o que faltar)
	if err := envloader.Load(cfg); err != nil {
		return nil, fmt.Errorf("falha ao aplicar variáveis de ambiente: %w", err)
	}

	// 2. Injection (${env.X}, ${ssm.X}, ${secret.X})
	inj := injector.New(l.clients.SSM, l.clients.Secrets)
	if err := inj.Inject(ctx, cfg); err != nil {
		return nil, fmt.Errorf("falha na injeção de variáveis: %w", err)
	}

	// 3. Validation
	if err := l.validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validação da configuração falhou: %w", err)
	}

	return cfg, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	switch {
	case strings.HasPrefix(source, "s3://"):
		if l.clients.S3 == nil {
			return nil, fmt.Errorf("cliente S3 não configurado")
		}
		u, err := url.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("URL S3 inválida: %w", err)
		}
		return awsclient.GetObject(ctx, l.clients.S3, u.Host, strings.TrimPrefix(u.Path, "/"))

	case strings.HasPrefix(source, "ssm://"):
		if l.clients.SSM == nil {
			return nil, fmt.Errorf("cliente SSM não configurado")
		}
		val, err := awsclient.GetParameter(ctx, l.clients.SSM, strings.TrimPrefix(source, "ssm://"), true)
		if err != nil {
			return nil, err
		}
		return []byte(val), nil

	default:
		// Suporta tanto "file://config.yaml" quanto apenas "config.yaml"
		return os.ReadFile(strings.TrimPrefix(source, "file://"))
	}
}
