// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"encoding/gob"
	"fmt"
	"math/rand"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/buraksezer/olric"
	discovery "github.com/buraksezer/olric-cloud-plugin/lib"
	"github.com/buraksezer/olric/config"
	sysconfig "github.com/euscan/euscanwww/config"
	log "github.com/sirupsen/logrus"
)

// OlricProvider gives access to the embedded olric node. Get blocks until the node has joined the cluster.
type OlricProvider interface {
	Get() *olric.Olric
	GetBindAddr() string
	Shutdown() error
}

const (
	olricBindAddr       = "0.0.0.0"
	olricPort           = 47475
	olricMemberlistPort = 47476
	olricLabelSelector  = "olric-cluster=euscanwww"
)

type olricProviderImpl struct {
	started sync.WaitGroup
	cfg     *config.Config
	node    *olric.Olric
}

func NewOlricProvider(olricConfig sysconfig.OlricConfig) (OlricProvider, error) {
	gob.Register(map[string]interface{}{})

	cfg, err := makeOlricConfig(olricConfig)
	if err != nil {
		return nil, err
	}
	prov := &olricProviderImpl{cfg: cfg}
	prov.started.Add(1)
	cfg.Started = prov.started.Done

	prov.node, err = olric.New(cfg)
	if err != nil {
		return nil, err
	}

	go func() {
		if err := prov.node.Start(); err != nil {
			log.Panicf("Olric cache node cannot be started: %s", err.Error())
		}
	}()
	return prov, nil
}

func (op *olricProviderImpl) Get() *olric.Olric {
	op.started.Wait()
	return op.node
}

func (op *olricProviderImpl) GetBindAddr() string {
	op.started.Wait()
	return op.cfg.BindAddr
}

func (op *olricProviderImpl) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return op.node.Shutdown(ctx)
}

func makeOlricConfig(olricConfig sysconfig.OlricConfig) (*config.Config, error) {
	switch olricConfig.DiscoveryMode {
	case "lan":
		if olricConfig.Namespace == "" {
			return nil, fmt.Errorf("olric namespace is not set")
		}
		replicaCount := olricConfig.ReplicaCount
		if replicaCount < 1 {
			replicaCount = 1
		}
		log.Infof("Olric runs in lan mode with %d replicas", replicaCount)

		cfg := config.New("lan")
		cfg.LogLevel = "WARN"
		cfg.LogVerbosity = 2
		cfg.ServiceDiscovery = map[string]interface{}{
			"plugin":   &discovery.CloudDiscovery{},
			"provider": "k8s",
			"args":     fmt.Sprintf("namespace=%s label_selector=\"%s\"", olricConfig.Namespace, olricLabelSelector),
		}
		cfg.PartitionCount = uint64(replicaCount * 4)
		cfg.ReplicaCount = replicaCount
		cfg.MemberCountQuorum = int32(replicaCount)
		cfg.BootstrapTimeout = 60 * time.Second
		cfg.MaxJoinAttempts = 60
		return cfg, nil
	case "", "local":
		log.Info("Olric runs in local mode")
		cfg := config.New("local")
		cfg.LogLevel = "WARN"
		cfg.LogVerbosity = 2
		cfg.BindAddr = olricBindAddr
		cfg.BindPort = freePort(olricPort)
		cfg.MemberlistConfig.BindAddr = olricBindAddr
		cfg.MemberlistConfig.BindPort = freePort(olricMemberlistPort)
		cfg.PartitionCount = 7
		return cfg, nil
	default:
		return nil, fmt.Errorf("unknown olric discovery mode %s", olricConfig.DiscoveryMode)
	}
}

// freePort returns preferred when it can be bound, a random free port otherwise.
func freePort(preferred int) int {
	port := preferred
	for !isPortFree(olricBindAddr, port) {
		port = rand.Intn(48127) + 1024
	}
	return port
}

func isPortFree(address string, port int) bool {
	ln, err := net.Listen("tcp", net.JoinHostPort(address, strconv.Itoa(port)))
	if err != nil {
		return false
	}
	_ = ln.Close()
	return true
}
