package dynamo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"noteful/internal/domain"
)

// namedItem is a folder or tag.
type namedItem struct {
	PK        string    `dynamodbav:"pk"`
	Entity    string    `dynamodbav:"entity"`
	ID        string    `dynamodbav:"id"`
	Name      string    `dynamodbav:"name"`
	CreatedAt time.Time `dynamodbav:"createdAt"`
	UpdatedAt time.Time `dynamodbav:"updatedAt"`
}

// nameGuard reserves a name for the entity with the given id.
type nameGuard struct {
	PK     string `dynamodbav:"pk"`
	Entity string `dynamodbav:"entity"`
	ID     string `dynamodbav:"id"`
}

// namedTable stores entities whose names are unique within their kind.
type namedTable struct {
	table  *Table
	entity string
}

func (n *namedTable) pk(id string) string {
	return n.entity + "#" + id
}

func (n *namedTable) guard(name string) string {
	return n.entity + "-name#" + name
}

func (n *namedTable) guardItem(name, id string) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(nameGuard{PK: n.guard(name), Entity: n.entity + "-name", ID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s name guard: %w", n.entity, err)
	}
	return item, nil
}

func (n *namedTable) list(ctx context.Context) ([]namedItem, error) {
	raw, err := n.table.scanEntity(ctx, n.entity, "", nil, nil)
	if err != nil {
		return nil, err
	}
	var items []namedItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %ss: %w", n.entity, err)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (n *namedTable) listByIDs(ctx context.Context, ids []string) ([]namedItem, error) {
	seen := make(map[string]bool, len(ids))
	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		keys = append(keys, key(n.pk(id)))
	}
	if len(keys) == 0 {
		return nil, nil
	}
	raw, err := n.table.batchGet(ctx, keys)
	if err != nil {
		return nil, err
	}
	var items []namedItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %ss: %w", n.entity, err)
	}
	return items, nil
}

func (n *namedTable) get(ctx context.Context, id string) (*namedItem, error) {
	out, err := n.table.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(n.table.name),
		Key:            key(n.pk(id)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", n.entity, err)
	}
	if out.Item == nil {
		return nil, domain.ErrNotFound
	}
	var item namedItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", n.entity, err)
	}
	return &item, nil
}

func (n *namedTable) create(ctx context.Context, id, name string, createdAt, updatedAt time.Time) error {
	item, err := attributevalue.MarshalMap(namedItem{
		PK: n.pk(id), Entity: n.entity, ID: id, Name: name, CreatedAt: createdAt, UpdatedAt: updatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", n.entity, err)
	}
	guard, err := n.guardItem(name, id)
	if err != nil {
		return err
	}
	_, err = n.table.api.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(n.table.name),
				Item:                item,
				ConditionExpression: aws.String("attribute_not_exists(pk)"),
			}},
			{Put: &types.Put{
				TableName:           aws.String(n.table.name),
				Item:                guard,
				ConditionExpression: aws.String("attribute_not_exists(pk)"),
			}},
		},
	})
	switch {
	case err == nil:
		return nil
	case cancelledBy(err, 1):
		return fmt.Errorf("%w: %s %q", domain.ErrDuplicateName, n.entity, name)
	default:
		return fmt.Errorf("failed to create %s: %w", n.entity, err)
	}
}

// update renames the entity and returns its creation time.
func (n *namedTable) update(ctx context.Context, id, name string, updatedAt time.Time) (time.Time, error) {
	current, err := n.get(ctx, id)
	if err != nil {
		return time.Time{}, err
	}
	at, err := attributevalue.Marshal(updatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	if current.Name == name {
		_, err := n.table.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(n.table.name),
			Key:                       key(n.pk(id)),
			UpdateExpression:          aws.String("SET #updatedAt = :updatedAt"),
			ConditionExpression:       aws.String("attribute_exists(pk)"),
			ExpressionAttributeNames:  map[string]string{"#updatedAt": "updatedAt"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":updatedAt": at},
		})
		if isConditionFailed(err) {
			return time.Time{}, domain.ErrNotFound
		}
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to update %s: %w", n.entity, err)
		}
		return current.CreatedAt, nil
	}

	guard, err := n.guardItem(name, id)
	if err != nil {
		return time.Time{}, err
	}
	_, err = n.table.api.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName:                aws.String(n.table.name),
				Key:                      key(n.pk(id)),
				UpdateExpression:         aws.String("SET #name = :name, #updatedAt = :updatedAt"),
				ConditionExpression:      aws.String("#name = :old"),
				ExpressionAttributeNames: map[string]string{"#name": "name", "#updatedAt": "updatedAt"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":name":      str(name),
					":old":       str(current.Name),
					":updatedAt": at,
				},
			}},
			{Put: &types.Put{
				TableName:           aws.String(n.table.name),
				Item:                guard,
				ConditionExpression: aws.String("attribute_not_exists(pk)"),
			}},
			{Delete: &types.Delete{
				TableName: aws.String(n.table.name),
				Key:       key(n.guard(current.Name)),
			}},
		},
	})
	switch {
	case err == nil:
		return current.CreatedAt, nil
	case cancelledBy(err, 1):
		return time.Time{}, fmt.Errorf("%w: %s %q", domain.ErrDuplicateName, n.entity, name)
	case cancelledBy(err, 0):
		// deleted or renamed since it was read
		return time.Time{}, domain.ErrNotFound
	default:
		return time.Time{}, fmt.Errorf("failed to update %s: %w", n.entity, err)
	}
}

func (n *namedTable) delete(ctx context.Context, id string) error {
	current, err := n.get(ctx, id)
	if err != nil {
		return err
	}
	_, err = n.table.api.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName:                 aws.String(n.table.name),
				Key:                       key(n.pk(id)),
				ConditionExpression:       aws.String("#name = :name"),
				ExpressionAttributeNames:  map[string]string{"#name": "name"},
				ExpressionAttributeValues: map[string]types.AttributeValue{":name": str(current.Name)},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(n.table.name),
				Key:       key(n.guard(current.Name)),
			}},
		},
	})
	switch {
	case err == nil:
		return nil
	case cancelledBy(err, 0):
		return domain.ErrNotFound
	default:
		return fmt.Errorf("failed to delete %s: %w", n.entity, err)
	}
}
