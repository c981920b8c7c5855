package main

import (
	"context"

	classifierrpc "pomotrack/internal/modules/insights/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *classifierrpc.Empty) (*classifierrpc.Metadata, error) {
	return &classifierrpc.Metadata{
		Name:    "sentiment",
		Version: "1.0.0",
		Labels:  []string{labelPositive, labelNeutral, labelNegative},
	}, nil
}

func (s *server) Classify(_ context.Context, in *classifierrpc.ClassifyRequest) (*classifierrpc.ClassifyResponse, error) {
	label, score := classify(in.Text)
	return &classifierrpc.ClassifyResponse{Label: label, Score: &score}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: classifierrpc.HandshakeConfig,
		Plugins:         classifierrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
