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
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"github.com/raywall/wiki-service/pkg/awsclient"
	"github.com/raywall/wiki-service/pkg/config"
	"github.com/raywall/wiki-service/pkg/graphql"
	"github.com/raywall/wiki-service/pkg/logger"
	"github.com/raywall/wiki-service/pkg/metrics"
	"github.com/raywall/wiki-service/pkg/observability"
	"github.com/raywall/wiki-service/pkg/transport"
	"github.com/raywall/wiki-service/pkg/wiki/repository"
	"github.com/raywall/wiki-service/pkg/wiki/resolver"
	"github.com/rs/zerolog/log"
)

var (
	// Variáveis injetáveis para mocking
	serverStarter = transport.StartHTTPServer
	lambdaStarter = lambda.Start
)

func main() {
	// .env é opcional; variáveis já exportadas têm precedência
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("falha ao ler .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Getenv("CONFIG_FILE_PATH")); err != nil {
		log.Error().Err(err).Msg("FATAL")
		stop()
		os.Exit(1)
	}
}

// run contém a lógica principal testável. cfgPath vazio carrega a
// configuração apenas das variáveis de ambiente.
func run(ctx context.Context, cfgPath string) error {
	// 1. Clientes usados pelo loader (s3://, ssm:// e placeholders)
	baseCfg, err := awsclient.LoadConfig(ctx, awsclient.Options{})
	if err != nil {
		return err
	}

	// 2. Configuração
	cfg, err := config.NewLoader(awsclient.NewClients(baseCfg)).Load(ctx, cfgPath)
	if err != nil {
		return err
	}

	// 3. Logging e métricas
	logger.Configure(cfg.Service.Logging, cfg.Service.Name)

	provider, err := observability.SetupMetrics(cfg.Service.Metrics, cfg.Service.Name)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	defer provider.Close()

	// 4. DynamoDB, construído uma vez e compartilhado por todas as requisições
	storeCfg, err := awsclient.LoadConfig(ctx, awsclient.Options{
		Region:          cfg.Store.Region,
		AccessKeyID:     cfg.Store.AccessKeyID,
		SecretAccessKey: cfg.Store.SecretAccessKey,
	})
	if err != nil {
		return err
	}
	client := awsclient.NewDynamoDB(storeCfg, cfg.Store.Endpoint)

	repo := repository.NewWikiRepository(client, repository.Config{
		TableName:  cfg.Store.Table,
		HashKey:    cfg.Store.HashKey,
		OwnerIndex: cfg.Store.OwnerIndex,
	})

	// 5. GraphQL
	engine, err := graphql.NewEngine(resolver.New(repo), metrics.NewRecorder(provider))
	if err != nil {
		return fmt.Errorf("schema: %w", err)
	}

	log.Info().
		Str("runtime", cfg.Service.Runtime).
		Str("table", cfg.Store.Table).
		Str("region", cfg.Store.Region).
		Msg("serviço inicializado")

	// 6. Seleciona Runtime Strategy
	switch cfg.Service.Runtime {
	case "local":
		return serverStarter(ctx, engine, cfg.Service)
	case "lambda":
		handler, err := transport.NewLambdaHandler(engine, cfg.Service)
		if err != nil {
			return err
		}
		lambdaStarter(handler.Handle)
		return nil
	default:
		return fmt.Errorf("runtime desconhecido: %s", cfg.Service.Runtime)
	}
}
