// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dynamo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/danielhkuo/campus-vote/store"
)

// Store implements store.Store on DynamoDB. Each logical table is a DynamoDB
// table with a single string partition key; the key attribute name per table
// is supplied at construction (candidates use "id", votes use "userId").
type Store struct {
	client *dynamodb.Client
	keys   map[string]string
}

// Open loads AWS configuration and returns a connected Store. When endpoint
// is non-empty the client is pointed at it with static credentials, which is
// how a local DynamoDB container is addressed in development.
func Open(ctx context.Context, region, endpoint string, keys map[string]string) (*Store, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if endpoint != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return New(client, keys), nil
}

// New wraps an existing DynamoDB client.
func New(client *dynamodb.Client, keys map[string]string) *Store {
	return &Store{client: client, keys: keys}
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) keyAttr(table string) string {
	if attr, ok := s.keys[table]; ok {
		return attr
	}
	return "id"
}

func (s *Store) keyValue(table, key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		s.keyAttr(table): &types.AttributeValueMemberS{Value: key},
	}
}

func itemToJSON(item map[string]types.AttributeValue) (json.RawMessage, error) {
	var doc map[string]any
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item: %w", err)
	}
	return raw, nil
}

func jsonToItem(doc json.RawMessage) (map[string]types.AttributeValue, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	item, err := attributevalue.MarshalMap(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return item, nil
}

func (s *Store) Get(ctx context.Context, table, key string) (json.RawMessage, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       s.keyValue(table, key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", table, key, err)
	}
	if len(out.Item) == 0 {
		return nil, store.ErrNotFound
	}
	return itemToJSON(out.Item)
}

func (s *Store) Put(ctx context.Context, table, key string, doc json.RawMessage) error {
	item, err := jsonToItem(doc)
	if err != nil {
		return err
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("failed to put %s/%s: %w", table, key, err)
	}
	return nil
}

func (s *Store) PutIfAbsent(ctx context.Context, table, key string, doc json.RawMessage) error {
	item, err := jsonToItem(doc)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": s.keyAttr(table),
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert %s/%s: %w", table, key, err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, table, key string, fields map[string]any) (json.RawMessage, error) {
	// Deterministic field order keeps the expression stable for logging.
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	exprNames := map[string]string{"#pk": s.keyAttr(table)}
	exprValues := map[string]types.AttributeValue{}
	sets := make([]string, 0, len(names))
	for i, name := range names {
		av, err := attributevalue.Marshal(fields[name])
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %s: %w", name, err)
		}
		n := fmt.Sprintf("#f%d", i)
		v := fmt.Sprintf(":v%d", i)
		exprNames[n] = name
		exprValues[v] = av
		sets = append(sets, n+" = "+v)
	}

	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       s.keyValue(table, key),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression:       aws.String("attribute_exists(#pk)"),
		ExpressionAttributeNames:  exprNames,
		ExpressionAttributeValues: exprValues,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		// Without the exists condition, DynamoDB would create a stub item
		// for an unknown key instead of failing.
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update %s/%s: %w", table, key, err)
	}
	return itemToJSON(out.Attributes)
}

func (s *Store) Scan(ctx context.Context, table string) ([]json.RawMessage, error) {
	docs := []json.RawMessage{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		for _, item := range out.Items {
			doc, err := itemToJSON(item)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return docs, nil
}

var _ store.Store = (*Store)(nil)
