package analysis

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// branchIndex is the GSI keyed on branch with timestamp as the sort key.
const branchIndex = "BranchIndex"

// DynamoStore implements ResultStore on a DynamoDB table.
type DynamoStore struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoStore constructs a DynamoDB-backed result store.
func NewDynamoStore(ctx context.Context, region, table string) (*DynamoStore, error) {
	if table == "" {
		return nil, fmt.Errorf("dynamodb table is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &DynamoStore{
		client: dynamodb.NewFromConfig(cfg),
		table:  table,
	}, nil
}

// Put writes the record in a single attempt. The item replaces any existing
// item at the same key, so repeating a write is idempotent.
func (s *DynamoStore) Put(ctx context.Context, record Record) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("marshal record filename=%s: %w", record.Filename, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put item table=%s filename=%s: %w", s.table, record.Filename, err)
	}
	return nil
}

// QueryByBranch reads up to limit records for the branch, most recent first.
func (s *DynamoStore) QueryByBranch(ctx context.Context, branch string, limit int32) ([]Record, error) {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		IndexName:              aws.String(branchIndex),
		KeyConditionExpression: aws.String("branch = :branch"),
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":branch": &ddbtypes.AttributeValueMemberS{Value: branch},
		},
		Limit:            aws.Int32(limit),
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb query table=%s branch=%s: %w", s.table, branch, err)
	}

	records := make([]Record, 0, len(out.Items))
	for _, item := range out.Items {
		var record Record
		if err := attributevalue.UnmarshalMap(item, &record); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

var _ ResultStore = (*DynamoStore)(nil)
