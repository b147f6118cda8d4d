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
package metrics

import (
	"fmt"
	"time"
)

// Métricas emitidas por operação da API
const (
	ResolverCalls   = "wiki.resolver.calls"
	ResolverLatency = "wiki.resolver.latency_ms"
)

// Recorder envia métricas conhecidas para um Provider, despachando pelo tipo.
type Recorder struct {
	definitions map[string]MetricDefinition
	provider    Provider
}

// NewRecorder cria um Recorder com as métricas do serviço já registradas.
func NewRecorder(provider Provider) *Recorder {
	return &Recorder{
		definitions: map[string]MetricDefinition{
			ResolverCalls:   {Name: ResolverCalls, Type: TypeCount},
			ResolverLatency: {Name: ResolverLatency, Type: TypeHistogram},
		},
		provider: provider,
	}
}

// Record envia um valor para a métrica registrada com o nome informado.
func (r *Recorder) Record(name string, value float64, tags ...string) error {
	def, exists := r.definitions[name]
	if !exists {
		return fmt.Errorf("métrica não definida: %s", name)
	}

	switch def.Type {
	case TypeCount:
		return r.provider.Count(def.Name, value, tags)
	case TypeGauge:
		return r.provider.Gauge(def.Name, value, tags)
	case TypeHistogram:
		return r.provider.Histogram(def.Name, value, tags)
	default:
		return fmt.Errorf("tipo de métrica desconhecido: %s", def.Type)
	}
}

// ObserveResolver registra uma chamada de operação e sua latência.
func (r *Recorder) ObserveResolver(operation string, err error, elapsed time.Duration) error {
	status := "ok"
	if err != nil {
		status = "error"
	}
	tags := []string{"operation:" + operation, "status:" + status}

	if err := r.Record(ResolverCalls, 1, tags...); err != nil {
		return err
	}
	return r.Record(ResolverLatency, float64(elapsed.Microseconds())/1000, tags...)
}
