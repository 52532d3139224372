package dynamo

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"noteful/internal/domain"
)

const noteEntity = "note"

type noteItem struct {
	PK        string    `dynamodbav:"pk"`
	Entity    string    `dynamodbav:"entity"`
	ID        string    `dynamodbav:"id"`
	Title     string    `dynamodbav:"title"`
	Content   string    `dynamodbav:"content"`
	FolderID  string    `dynamodbav:"folderId,omitempty"`
	Tags      []string  `dynamodbav:"tags"`
	CreatedAt time.Time `dynamodbav:"createdAt"`
	UpdatedAt time.Time `dynamodbav:"updatedAt"`
}

func notePK(id string) string {
	return noteEntity + "#" + id
}

func toNoteItem(n *domain.Note) noteItem {
	tags := n.TagIDs
	if tags == nil {
		tags = []string{}
	}
	return noteItem{
		PK:        notePK(n.ID),
		Entity:    noteEntity,
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		FolderID:  n.FolderID,
		Tags:      tags,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (it noteItem) toNote() *domain.Note {
	tags := it.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Note{
		ID:        it.ID,
		Title:     it.Title,
		Content:   it.Content,
		FolderID:  it.FolderID,
		TagIDs:    tags,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

type noteRepository struct {
	table *Table
}

// NewNoteRepository returns a domain.NoteRepository backed by table.
func NewNoteRepository(table *Table) domain.NoteRepository {
	return &noteRepository{table: table}
}

func (r *noteRepository) scanNotes(ctx context.Context, extra string, names map[string]string, values map[string]types.AttributeValue) ([]noteItem, error) {
	raw, err := r.table.scanEntity(ctx, noteEntity, extra, names, values)
	if err != nil {
		return nil, err
	}
	var items []noteItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notes: %w", err)
	}
	return items, nil
}

// List pushes the folder and tag filters into the scan. The search term is
// matched here because DynamoDB's contains() is case-sensitive.
func (r *noteRepository) List(ctx context.Context, filter domain.NoteFilter) ([]*domain.Note, error) {
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.FolderID != "" {
		conds = append(conds, "#folderId = :folderId")
		names["#folderId"] = "folderId"
		values[":folderId"] = str(filter.FolderID)
	}
	if filter.TagID != "" {
		conds = append(conds, "contains(#tags, :tag)")
		names["#tags"] = "tags"
		values[":tag"] = str(filter.TagID)
	}
	items, err := r.scanNotes(ctx, strings.Join(conds, " AND "), names, values)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Note, 0, len(items))
	for _, it := range items {
		n := it.toNote()
		if filter.Matches(n) {
			out = append(out, n)
		}
	}
	domain.SortByRecency(out)
	if filter.Page != nil {
		start, end := filter.Page.Window(len(out))
		out = out[start:end]
	}
	return out, nil
}

func (r *noteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	out, err := r.table.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table.name),
		Key:            key(notePK(id)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if out.Item == nil {
		return nil, domain.ErrNotFound
	}
	var it noteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("failed to unmarshal note: %w", err)
	}
	return it.toNote(), nil
}

func (r *noteRepository) Create(ctx context.Context, n *domain.Note) error {
	item, err := attributevalue.MarshalMap(toNoteItem(n))
	if err != nil {
		return fmt.Errorf("failed to marshal note: %w", err)
	}
	_, err = r.table.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table.name),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(pk)"),
	})
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

// updateExpression renders patch as an UpdateExpression. updated_at is always set.
func updateExpression(patch domain.NotePatch, updatedAt time.Time) (string, map[string]string, map[string]types.AttributeValue, error) {
	at, err := attributevalue.Marshal(updatedAt)
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	sets := []string{"#updatedAt = :updatedAt"}
	names := map[string]string{"#updatedAt": "updatedAt"}
	values := map[string]types.AttributeValue{":updatedAt": at}
	var removes []string

	if patch.Title.Set {
		sets = append(sets, "#title = :title")
		names["#title"] = "title"
		values[":title"] = str(patch.Title.Value)
	}
	if patch.Content.Set {
		sets = append(sets, "#content = :content")
		names["#content"] = "content"
		values[":content"] = str(patch.Content.Value)
	}
	if patch.FolderID.Set {
		names["#folderId"] = "folderId"
		if patch.FolderID.Value == "" {
			removes = append(removes, "#folderId")
		} else {
			sets = append(sets, "#folderId = :folderId")
			values[":folderId"] = str(patch.FolderID.Value)
		}
	}
	if patch.TagIDs.Set {
		tags := patch.TagIDs.Value
		if tags == nil {
			tags = []string{}
		}
		av, err := attributevalue.Marshal(tags)
		if err != nil {
			return "", nil, nil, fmt.Errorf("failed to marshal tags: %w", err)
		}
		sets = append(sets, "#tags = :tags")
		names["#tags"] = "tags"
		values[":tags"] = av
	}

	expr := "SET " + strings.Join(sets, ", ")
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}
	return expr, names, values, nil
}

func (r *noteRepository) Update(ctx context.Context, id string, patch domain.NotePatch, updatedAt time.Time) (*domain.Note, error) {
	expr, names, values, err := updateExpression(patch, updatedAt)
	if err != nil {
		return nil, err
	}
	out, err := r.table.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table.name),
		Key:                       key(notePK(id)),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(pk)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	var it noteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return nil, fmt.Errorf("failed to unmarshal note: %w", err)
	}
	return it.toNote(), nil
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.table.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.table.name),
		Key:                 key(notePK(id)),
		ConditionExpression: aws.String("attribute_exists(pk)"),
	})
	if isConditionFailed(err) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// PullTag removes tagID from each note by list index. The condition on the
// element makes a concurrent edit of the tag list fail the update instead of
// removing the wrong tag; the caller retries.
func (r *noteRepository) PullTag(ctx context.Context, tagID string) (int64, error) {
	items, err := r.scanNotes(ctx, "contains(#tags, :tag)",
		map[string]string{"#tags": "tags"},
		map[string]types.AttributeValue{":tag": str(tagID)})
	if err != nil {
		return 0, err
	}
	var changed int64
	for _, it := range items {
		i := slices.Index(it.Tags, tagID)
		if i < 0 {
			continue
		}
		_, err := r.table.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(r.table.name),
			Key:                       key(it.PK),
			UpdateExpression:          aws.String(fmt.Sprintf("REMOVE #tags[%d]", i)),
			ConditionExpression:       aws.String(fmt.Sprintf("#tags[%d] = :tag", i)),
			ExpressionAttributeNames:  map[string]string{"#tags": "tags"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":tag": str(tagID)},
		})
		if err != nil {
			return changed, fmt.Errorf("failed to pull tag from note %s: %w", it.ID, err)
		}
		changed++
	}
	return changed, nil
}

func (r *noteRepository) ClearFolder(ctx context.Context, folderID string) (int64, error) {
	names := map[string]string{"#folderId": "folderId"}
	values := map[string]types.AttributeValue{":folderId": str(folderID)}
	items, err := r.scanNotes(ctx, "#folderId = :folderId", names, values)
	if err != nil {
		return 0, err
	}
	var changed int64
	for _, it := range items {
		_, err := r.table.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(r.table.name),
			Key:                       key(it.PK),
			UpdateExpression:          aws.String("REMOVE #folderId"),
			ConditionExpression:       aws.String("#folderId = :folderId"),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
		if isConditionFailed(err) {
			// refiled or deleted since the scan
			continue
		}
		if err != nil {
			return changed, fmt.Errorf("failed to clear folder on note %s: %w", it.ID, err)
		}
		changed++
	}
	return changed, nil
}
