package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"repair_visits/internal/domain/entities"
	"repair_visits/internal/usecase/interfaces"
)

// fakeDynamo is an in-memory stand-in for the three DynamoDB calls the store
// makes. Scans return pageSize items per page to exercise pagination.
type fakeDynamo struct {
	mu       sync.Mutex
	tables   map[string]map[string]map[string]types.AttributeValue
	pageSize int
	batches  []int
	failTx   error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}, pageSize: 2}
}

func keyOf(item map[string]types.AttributeValue) string {
	return item["id"].(*types.AttributeValueMemberS).Value
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := f.tables[aws.ToString(in.TableName)]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	start := 0
	if in.ExclusiveStartKey != nil {
		start, _ = slices.BinarySearch(keys, keyOf(in.ExclusiveStartKey))
		start++
	}
	end := min(start+f.pageSize, len(keys))

	out := &dynamodb.ScanOutput{}
	for _, k := range keys[start:end] {
		out.Items = append(out.Items, table[k])
	}
	if end < len(keys) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: keys[end-1]}}
	}
	return out, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := f.tables[aws.ToString(in.TableName)]
	item, ok := table[keyOf(in.Key)]
	vals := in.ExpressionAttributeValues
	if !ok || item["version"].(*types.AttributeValueMemberN).Value != vals[":expected"].(*types.AttributeValueMemberN).Value {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
	}
	item["payload"] = vals[":payload"]
	item["version"] = vals[":version"]
	item["updated_at"] = vals[":updated_at"]
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failTx != nil {
		return nil, f.failTx
	}
	if len(in.TransactItems) > maxTransactItems {
		return nil, fmt.Errorf("too many items: %d", len(in.TransactItems))
	}
	f.batches = append(f.batches, len(in.TransactItems))
	for _, w := range in.TransactItems {
		switch {
		case w.Put != nil:
			name := aws.ToString(w.Put.TableName)
			if f.tables[name] == nil {
				f.tables[name] = map[string]map[string]types.AttributeValue{}
			}
			f.tables[name][keyOf(w.Put.Item)] = w.Put.Item
		case w.Delete != nil:
			delete(f.tables[aws.ToString(w.Delete.TableName)], keyOf(w.Delete.Key))
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func TestDynamoStore(t *testing.T) {
	t.Run("empty tables", func(t *testing.T) {
		s := NewDynamoStore(newFakeDynamo(), "orders", "technicians")

		orders, err := s.LoadOrders(context.Background())
		if err != nil || len(orders) != 0 {
			t.Fatalf("expected no orders, got %v %v", orders, err)
		}
	})

	t.Run("save and load keep collection order across pages", func(t *testing.T) {
		fake := newFakeDynamo()
		s := NewDynamoStore(fake, "orders", "technicians")
		ctx := context.Background()

		orders := []entities.Order{
			{ID: "zeta", Version: 1, Visits: []entities.Visit{{ID: "V1"}}},
			{ID: "alpha"},
			{ID: "mid", ClientName: "Rita"},
			{ID: "alpha", ClientName: "second alpha"},
			{ClientName: "no id"},
		}
		if err := s.SaveOrders(ctx, orders); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := s.LoadOrders(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 5 {
			t.Fatalf("expected 5 orders, got %d", len(got))
		}
		for i := range orders {
			if got[i].ID != orders[i].ID || got[i].ClientName != orders[i].ClientName {
				t.Fatalf("order %d: expected %+v, got %+v", i, orders[i], got[i])
			}
		}
		if got[0].Version != 1 || got[0].Visits[0].ID != "V1" {
			t.Fatalf("unexpected first order: %+v", got[0])
		}
	})

	t.Run("save removes orders no longer present", func(t *testing.T) {
		fake := newFakeDynamo()
		s := NewDynamoStore(fake, "orders", "technicians")
		ctx := context.Background()

		_ = s.SaveOrders(ctx, []entities.Order{{ID: "a"}, {ID: "b"}, {ID: "c"}})
		if err := s.SaveOrders(ctx, []entities.Order{{ID: "b"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := s.LoadOrders(ctx)
		if len(got) != 1 || got[0].ID != "b" {
			t.Fatalf("unexpected orders: %+v", got)
		}
	})

	t.Run("large collections are written in batches", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.pageSize = 50
		s := NewDynamoStore(fake, "orders", "technicians")

		orders := make([]entities.Order, 230)
		for i := range orders {
			orders[i] = entities.Order{ID: fmt.Sprintf("o-%03d", i)}
		}
		if err := s.SaveOrders(context.Background(), orders); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(fake.batches, []int{100, 100, 30}) {
			t.Fatalf("unexpected batches: %v", fake.batches)
		}
	})

	t.Run("write failure", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.failTx = errors.New("throttled")
		s := NewDynamoStore(fake, "orders", "technicians")

		if err := s.SaveOrders(context.Background(), []entities.Order{{ID: "a"}}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("patch checks the version", func(t *testing.T) {
		fake := newFakeDynamo()
		s := NewDynamoStore(fake, "orders", "technicians")
		ctx := context.Background()

		_ = s.SaveOrders(ctx, []entities.Order{{ID: "o-1", Version: 2, Visits: []entities.Visit{{ID: "V1"}}}})

		patched := entities.Order{ID: "o-1", Version: 3, Visits: []entities.Visit{{ID: "V1", Notes: "done"}}}
		if err := s.PatchOrder(ctx, patched, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := s.LoadOrders(ctx)
		if got[0].Version != 3 || got[0].Visits[0].Notes != "done" {
			t.Fatalf("unexpected order: %+v", got[0])
		}

		stale := entities.Order{ID: "o-1", Version: 3}
		if err := s.PatchOrder(ctx, stale, 2); !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
		if err := s.PatchOrder(ctx, entities.Order{ID: "ghost", Version: 1}, 0); !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict for a missing order, got %v", err)
		}
		if err := s.PatchOrder(ctx, entities.Order{}, 0); err == nil {
			t.Fatalf("expected error for an order without id")
		}
	})

	t.Run("technicians", func(t *testing.T) {
		s := NewDynamoStore(newFakeDynamo(), "orders", "technicians")
		ctx := context.Background()

		techs := []entities.Technician{{ID: "t-2", Name: "Bea"}, {ID: "t-1", Name: "Ana"}, {ID: "t-3", Name: "Caio"}}
		if err := s.SaveTechnicians(ctx, techs); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := s.LoadTechnicians(ctx)
		if err != nil || len(got) != 3 || got[0].ID != "t-2" || got[2].Name != "Caio" {
			t.Fatalf("unexpected technicians: %+v %v", got, err)
		}
	})
}

func TestStorageKeys(t *testing.T) {
	ids := []string{"a", "", "a", "b"}
	got := storageKeys(len(ids), func(i int) string { return ids[i] })
	if want := []string{"a", "#1", "a#2", "b"}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
