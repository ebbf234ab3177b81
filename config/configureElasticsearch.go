package config

import (
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

const (
	esReadyTimeout  = 5 * time.Minute
	esRetryInterval = 5 * time.Second
)

// InitElasticsearch initializes the Elasticsearch client and blocks until the
// cluster answers pings. Readiness failures here are fatal: nothing in this
// service can run without the backend.
func InitElasticsearch() *elasticsearch.Client {
	cfg := elasticsearch.Config{
		Addresses: []string{
			GetEnvOrDefault("ES_LOCAL_URL", "http://localhost:9200"),
		},
		Username: "elastic",
		Password: GetEnv("ES_LOCAL_PASSWORD"),
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		Logger.Fatal("Error initializing Elasticsearch", zap.Error(err))
	}

	waitForElasticsearch(client)

	Logger.Info("Elasticsearch is up and running")
	return client
}

// waitForElasticsearch pings on a fixed interval until the cluster responds
// or the overall timeout expires.
func waitForElasticsearch(client *elasticsearch.Client) {
	deadline := time.Now().Add(esReadyTimeout)

	for time.Now().Before(deadline) {
		res, err := client.Ping()
		if err == nil {
			healthy := !res.IsError()
			res.Body.Close()
			if healthy {
				Logger.Info("Successfully connected to Elasticsearch")
				return
			}
		} else {
			Logger.Warn("Connection failed", zap.Error(err))
		}

		Logger.Info("Waiting for Elasticsearch...")
		time.Sleep(esRetryInterval)
	}

	Logger.Fatal("Elasticsearch did not become available in time")
}
