package main

import (
	"fmt"
	"os"
	"synthink/internal/client"
	"synthink/internal/composer"
	"synthink/internal/providers"
	"synthink/internal/records"
	"synthink/internal/storage"
	"synthink/internal/storage/interfaces"
	"synthink/internal/structures"
)

// session bundles what a client command needs: the API client and the local
// record store.
type session struct {
	conf   *structures.ClientConfig
	logger providers.Logger
	client *client.Client
	store  *records.Store
}

func openSession() (*session, error) {
	conf, err := clientConfig()
	if err != nil {
		return nil, err
	}
	logger := providers.NewConsoleLogger(conf.LogLevel, os.Stderr)

	var compressor interfaces.CompressorInterface
	if conf.Compress {
		compressor, err = storage.NewZstdCompressor()
		if err != nil {
			return nil, fmt.Errorf("create compressor: %w", err)
		}
	}
	files, err := storage.NewFileManager(conf.DataDir, compressor)
	if err != nil {
		return nil, err
	}

	return &session{
		conf:   conf,
		logger: logger,
		client: client.New(conf.ServerURL, nil, logger),
		store:  records.NewStore(files, logger),
	}, nil
}

func (s *session) composer(opts ...composer.Option) *composer.Composer {
	return composer.New(s.client, s.store, s.logger, opts...)
}

func (s *session) Close() {
	s.store.Close()
	s.logger.Close()
}
