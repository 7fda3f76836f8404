package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"repair_visits/internal/domain/entities"
	"repair_visits/internal/usecase/interfaces"
)

const (
	dynamoDriver = "dynamodb"

	// maxTransactItems is the DynamoDB limit of items per TransactWriteItems call.
	maxTransactItems = 100
)

// dynamoAPI is the part of *dynamodb.Client the store uses.
type dynamoAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

type orderItem struct {
	ID        string `dynamodbav:"id"`
	Position  int    `dynamodbav:"position"`
	Version   int64  `dynamodbav:"version"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type technicianItem struct {
	ID       string `dynamodbav:"id"`
	Position int    `dynamodbav:"position"`
	Payload  string `dynamodbav:"payload"`
}

// DynamoStore keeps one item per order and per technician.
//
// Table requirements (both tables):
//   - PK: id (string)
//
// Items carry the entity as a JSON payload plus its position in the
// collection, so loads return the collection in stored order. Orders also
// carry a version attribute checked by PatchOrder.
//
// SaveOrders writes in transactions of at most 100 items; collections larger
// than that are replaced batch by batch.
type DynamoStore struct {
	ddb              dynamoAPI
	ordersTable      string
	techniciansTable string
}

var (
	_ interfaces.IPatchableRecordStore = (*DynamoStore)(nil)
	_ interfaces.ITechnicianWriter     = (*DynamoStore)(nil)
)

func NewDynamoStore(ddb dynamoAPI, ordersTable, techniciansTable string) *DynamoStore {
	return &DynamoStore{ddb: ddb, ordersTable: ordersTable, techniciansTable: techniciansTable}
}

func (s *DynamoStore) LoadOrders(ctx context.Context) ([]entities.Order, error) {
	defer observe(dynamoDriver, "load_orders", time.Now())

	var items []orderItem
	if err := s.scan(ctx, s.ordersTable, &items); err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}
	slices.SortStableFunc(items, func(a, b orderItem) int { return a.Position - b.Position })

	orders := make([]entities.Order, 0, len(items))
	for _, it := range items {
		var o entities.Order
		if err := json.Unmarshal([]byte(it.Payload), &o); err != nil {
			return nil, fmt.Errorf("decode order %s: %w", it.ID, err)
		}
		o.Version = it.Version
		orders = append(orders, o)
	}
	return orders, nil
}

func (s *DynamoStore) LoadTechnicians(ctx context.Context) ([]entities.Technician, error) {
	defer observe(dynamoDriver, "load_technicians", time.Now())

	var items []technicianItem
	if err := s.scan(ctx, s.techniciansTable, &items); err != nil {
		return nil, fmt.Errorf("scan technicians: %w", err)
	}
	slices.SortStableFunc(items, func(a, b technicianItem) int { return a.Position - b.Position })

	techs := make([]entities.Technician, 0, len(items))
	for _, it := range items {
		var t entities.Technician
		if err := json.Unmarshal([]byte(it.Payload), &t); err != nil {
			return nil, fmt.Errorf("decode technician %s: %w", it.ID, err)
		}
		techs = append(techs, t)
	}
	return techs, nil
}

// SaveOrders replaces the orders table with orders. Items whose key is no
// longer present are deleted.
func (s *DynamoStore) SaveOrders(ctx context.Context, orders []entities.Order) error {
	defer observe(dynamoDriver, "save_orders", time.Now())

	now := time.Now().UTC().Format(time.RFC3339Nano)
	keys := storageKeys(len(orders), func(i int) string { return orders[i].ID })
	items := make([]any, len(orders))
	for i, o := range orders {
		payload, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("encode order %s: %w", keys[i], err)
		}
		items[i] = orderItem{ID: keys[i], Position: i, Version: o.Version, Payload: string(payload), UpdatedAt: now}
	}
	return s.replace(ctx, s.ordersTable, keys, items)
}

func (s *DynamoStore) SaveTechnicians(ctx context.Context, technicians []entities.Technician) error {
	defer observe(dynamoDriver, "save_technicians", time.Now())

	keys := storageKeys(len(technicians), func(i int) string { return technicians[i].ID })
	items := make([]any, len(technicians))
	for i, t := range technicians {
		payload, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("encode technician %s: %w", keys[i], err)
		}
		items[i] = technicianItem{ID: keys[i], Position: i, Payload: string(payload)}
	}
	return s.replace(ctx, s.techniciansTable, keys, items)
}

// PatchOrder overwrites one order when its stored version still equals
// expectedVersion. A lost race returns interfaces.ErrVersionConflict.
//
// The item is addressed by order.ID, which is its key only when the id is
// unique in the collection; see storageKeys. Orders with an empty or
// repeated id must be written through SaveOrders.
func (s *DynamoStore) PatchOrder(ctx context.Context, order entities.Order, expectedVersion int64) error {
	defer observe(dynamoDriver, "patch_order", time.Now())

	if order.ID == "" {
		return errors.New("patch order: order has no id")
	}
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order %s: %w", order.ID, err)
	}

	_, err = s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ordersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: order.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:    aws.String("SET #payload = :payload, #version = :version, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#payload":    "payload",
			"#version":    "version",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
			":version":    &types.AttributeValueMemberN{Value: strconv.FormatInt(order.Version, 10)},
			":payload":    &types.AttributeValueMemberS{Value: string(payload)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return fmt.Errorf("order %s: %w", order.ID, interfaces.ErrVersionConflict)
	}
	if err != nil {
		return fmt.Errorf("update order %s: %w", order.ID, err)
	}
	return nil
}

func (s *DynamoStore) scan(ctx context.Context, table string, out any) error {
	var all []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(table),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		all = append(all, page.Items...)
	}
	return attributevalue.UnmarshalListOfMaps(all, out)
}

// replace puts items under keys and deletes every other item of table.
func (s *DynamoStore) replace(ctx context.Context, table string, keys []string, items []any) error {
	var existing []struct {
		ID string `dynamodbav:"id"`
	}
	if err := s.scan(ctx, table, &existing); err != nil {
		return fmt.Errorf("scan %s: %w", table, err)
	}

	keep := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		keep[k] = struct{}{}
	}

	writes := make([]types.TransactWriteItem, 0, len(items)+len(existing))
	for _, it := range items {
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{Put: &types.Put{TableName: aws.String(table), Item: av}})
	}
	for _, e := range existing {
		if _, ok := keep[e.ID]; ok {
			continue
		}
		writes = append(writes, types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(table),
			Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: e.ID}},
		}})
	}

	for batch := range slices.Chunk(writes, maxTransactItems) {
		if _, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: batch}); err != nil {
			return fmt.Errorf("write %s: %w", table, err)
		}
	}
	return nil
}

// storageKeys derives a unique partition key per entry: its id, or its
// position when the id is empty or already taken.
func storageKeys(n int, id func(int) string) []string {
	keys := make([]string, n)
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		k := id(i)
		if _, dup := seen[k]; dup || k == "" {
			k = k + "#" + strconv.Itoa(i)
		}
		seen[k] = struct{}{}
		keys[i] = k
	}
	return keys
}
