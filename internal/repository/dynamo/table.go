// Package dynamo implements the repositories on a single DynamoDB table.
//
// Every item is keyed by the string attribute pk, "<entity>#<id>", and
// carries an entity attribute used to filter scans. Folder and tag names are
// kept unique by guard items keyed "<entity>-name#<name>" that are written in
// the same transaction as the entity they belong to.
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	keyAttr    = "pk"
	entityAttr = "entity"

	// batch limits imposed by DynamoDB
	maxBatchGet   = 100
	maxBatchWrite = 25
)

// API is the subset of *dynamodb.Client the repositories use.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// NewClient builds a DynamoDB client for region. A non-empty endpoint points
// the client at a local DynamoDB, which accepts any static credentials.
func NewClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if endpoint != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("local", "local", "")))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// Table is a handle on the single table every repository shares.
type Table struct {
	api  API
	name string
}

// NewTable returns a Table named name reached through api.
func NewTable(api API, name string) *Table {
	return &Table{api: api, name: name}
}

// EnsureTable creates the table if it does not exist and waits until it is active.
func (t *Table) EnsureTable(ctx context.Context) error {
	_, err := t.api.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(t.name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(keyAttr), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(keyAttr), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	var inUse *types.ResourceInUseException
	if err != nil && !errors.As(err, &inUse) {
		return fmt.Errorf("failed to create table %s: %w", t.name, err)
	}
	waiter := dynamodb.NewTableExistsWaiter(t.api)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(t.name)}, 2*time.Minute); err != nil {
		return fmt.Errorf("table %s not ready: %w", t.name, err)
	}
	return nil
}

// Reset deletes every item in the table.
func (t *Table) Reset(ctx context.Context) error {
	items, err := t.scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(t.name),
		ProjectionExpression:     aws.String("#pk"),
		ExpressionAttributeNames: map[string]string{"#pk": keyAttr},
	})
	if err != nil {
		return err
	}
	for chunk := range slices.Chunk(items, maxBatchWrite) {
		reqs := make([]types.WriteRequest, 0, len(chunk))
		for _, item := range chunk {
			reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: item}})
		}
		if err := t.batchWrite(ctx, reqs); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) batchWrite(ctx context.Context, reqs []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{t.name: reqs}
	for len(pending[t.name]) > 0 {
		out, err := t.api.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return fmt.Errorf("failed to batch write: %w", err)
		}
		pending = out.UnprocessedItems
		if len(pending[t.name]) > 0 {
			if err := backoff(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// batchGet fetches the items under keys. Missing keys are skipped.
func (t *Table) batchGet(ctx context.Context, keys []map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for chunk := range slices.Chunk(keys, maxBatchGet) {
		pending := map[string]types.KeysAndAttributes{t.name: {Keys: chunk, ConsistentRead: aws.Bool(true)}}
		for len(pending[t.name].Keys) > 0 {
			out, err := t.api.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: pending})
			if err != nil {
				return nil, fmt.Errorf("failed to batch get: %w", err)
			}
			items = append(items, out.Responses[t.name]...)
			pending = out.UnprocessedKeys
			if len(pending[t.name].Keys) > 0 {
				if err := backoff(ctx); err != nil {
					return nil, err
				}
			}
		}
	}
	return items, nil
}

func (t *Table) scan(ctx context.Context, input *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(t.api, input)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", t.name, err)
		}
		items = append(items, out.Items...)
	}
	return items, nil
}

// scanEntity returns every item of entity that also satisfies extra, a filter
// expression over names and values. extra may be empty.
func (t *Table) scanEntity(ctx context.Context, entity, extra string, names map[string]string, values map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error) {
	filter := "#entity = :entity"
	if extra != "" {
		filter += " AND " + extra
	}
	allNames := map[string]string{"#entity": entityAttr}
	for k, v := range names {
		allNames[k] = v
	}
	allValues := map[string]types.AttributeValue{":entity": &types.AttributeValueMemberS{Value: entity}}
	for k, v := range values {
		allValues[k] = v
	}
	return t.scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(t.name),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  allNames,
		ExpressionAttributeValues: allValues,
	})
}

func backoff(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func key(pk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{keyAttr: &types.AttributeValueMemberS{Value: pk}}
}

func str(s string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: s}
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// cancelledBy reports whether a transaction failed because the condition on
// its i-th action did not hold.
func cancelledBy(err error, i int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	return i < len(tce.CancellationReasons) && aws.ToString(tce.CancellationReasons[i].Code) == "ConditionalCheckFailed"
}
