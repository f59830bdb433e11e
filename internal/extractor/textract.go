// Package extractor calls the managed OCR service to turn stored documents
// into plain text.
package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

type Extractor interface {
	// Extract runs OCR on the object previously uploaded under key and
	// returns its text. An empty string is a valid result for documents
	// with no recognizable text.
	Extract(ctx context.Context, key string) (string, error)
}

type textractExtractor struct {
	client *textract.Client
	bucket string
}

func NewTextractExtractor(ctx context.Context, region, bucket string) (Extractor, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &textractExtractor{
		client: textract.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

func (e *textractExtractor) Extract(ctx context.Context, key string) (string, error) {
	out, err := e.client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{
			S3Object: &types.S3Object{
				Bucket: aws.String(e.bucket),
				Name:   aws.String(key),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("detect document text key=%s: %w", key, err)
	}

	return JoinLineBlocks(out.Blocks), nil
}

// JoinLineBlocks concatenates the text of LINE blocks in detection order.
// WORD blocks repeat the same text token by token and are skipped.
func JoinLineBlocks(blocks []types.Block) string {
	var lines []string
	for _, block := range blocks {
		if block.BlockType != types.BlockTypeLine {
			continue
		}
		if block.Text == nil || *block.Text == "" {
			continue
		}
		lines = append(lines, *block.Text)
	}
	return strings.Join(lines, "\n")
}
