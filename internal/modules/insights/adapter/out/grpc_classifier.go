package out

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	classifierrpc "pomotrack/internal/modules/insights/adapter/out/rpc"
	"pomotrack/internal/modules/insights/domain"
	insightsout "pomotrack/internal/modules/insights/port/out"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
)

// GRPCClassifier runs the classifier plugin binary once per call.
type GRPCClassifier struct {
	manifest domain.ClassifierManifest
}

// NewGRPCClassifier refuses binaries whose checksum does not match the
// manifest.
func NewGRPCClassifier(manifest domain.ClassifierManifest) (insightsout.SentimentClassifier, error) {
	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		return nil, err
	}
	return &GRPCClassifier{manifest: manifest}, nil
}

func (c *GRPCClassifier) Classify(ctx context.Context, text string) (domain.Sentiment, error) {
	client, closeFn, err := c.connect(defaultStartTimeout)
	if err != nil {
		return domain.Sentiment{}, err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	response, err := client.Classify(callCtx, &classifierrpc.ClassifyRequest{Text: text})
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return domain.Sentiment{}, fmt.Errorf("%w: %s", domain.ErrClassifierTimeout, c.manifest.Name)
		}
		return domain.Sentiment{}, fmt.Errorf("classify: %w", err)
	}
	return domain.Sentiment{Label: strings.TrimSpace(response.Label), Score: response.Score}, nil
}

func (c *GRPCClassifier) connect(startTimeout time.Duration) (classifierrpc.ClassifierClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  classifierrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          classifierrpc.PluginMap(nil),
		Cmd:              exec.Command(c.manifest.Binary),
		Managed:          true,
		StartTimeout:     startTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start classifier plugin: %w", err)
	}
	raw, err := rpcClient.Dispense(classifierrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense classifier plugin: %w", err)
	}
	typed, ok := raw.(classifierrpc.ClassifierClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("classifier rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read classifier binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	if hex.EncodeToString(hash[:]) != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}
