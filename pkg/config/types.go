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

import "time"

// ServiceConfig representa a estrutura raiz do arquivo YAML do serviço.
type ServiceConfig struct {
	Service ServiceDetails `yaml:"service" validate:"required"`
	Store   StoreConf      `yaml:"store" validate:"required"`
}

// ServiceDetails contém os metadados e configurações de runtime do serviço.
type ServiceDetails struct {
	Name              string      `yaml:"name" env:"SERVICE_NAME" envDefault:"wiki-service" validate:"required,hostname_rfc1123"`
	Runtime           string      `yaml:"runtime" env:"SERVICE_RUNTIME" envDefault:"local" validate:"required,oneof=local lambda"`
	Port              int         `yaml:"port" env:"PORT" envDefault:"8000" validate:"required_if=Runtime local,gte=0,lte=65535"`
	Route             string      `yaml:"route" env:"GRAPHQL_ROUTE" envDefault:"/" validate:"required,startswith=/"`
	Timeout           string      `yaml:"timeout" env:"REQUEST_TIMEOUT" envDefault:"10s" validate:"required"` // Ex: "500ms", "2s"
	DisablePlayground bool        `yaml:"disable_playground" env:"PLAYGROUND_DISABLED"`
	CORS              CORSConf    `yaml:"cors"`
	Logging           LoggingConf `yaml:"logging"`
	Metrics           MetricsConf `yaml:"metrics"`
}

type CORSConf struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

type LoggingConf struct {
	Disabled bool   `yaml:"disabled" env:"LOG_DISABLED"`
	Level    string `yaml:"level" env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool     `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string   `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string   `yaml:"namespace" env:"DD_NAMESPACE"`
	Tags      []string `yaml:"tags" env:"DD_TAGS"`
}

// StoreConf descreve a tabela DynamoDB e como alcançá-la.
type StoreConf struct {
	Region          string `yaml:"region" env:"AWS_REGION" envDefault:"ap-northeast-1" validate:"required"`
	Endpoint        string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT" validate:"omitempty,url"` // Ex: http://localhost:8001
	Table           string `yaml:"table" env:"DYNAMODB_TABLE_NAME" envDefault:"wiki" validate:"required"`
	HashKey         string `yaml:"hash_key" env:"DYNAMODB_HASH_KEY" envDefault:"id" validate:"required"`
	OwnerIndex      string `yaml:"owner_index" env:"DYNAMODB_OWNER_INDEX" envDefault:"owner" validate:"required"`
	AccessKeyID     string `yaml:"access_key_id" env:"STORE_ACCESS_KEY_ID" validate:"required_with=SecretAccessKey"`
	SecretAccessKey string `yaml:"secret_access_key" env:"STORE_SECRET_ACCESS_KEY" validate:"required_with=AccessKeyID"`
}

func (s ServiceDetails) GetTimeout() time.Duration {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
