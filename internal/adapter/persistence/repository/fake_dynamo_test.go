package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI that understands the handful of
// condition and update expressions the repositories emit.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
	calls  map[string]int
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		tables: map[string]map[string]map[string]types.AttributeValue{},
		calls:  map[string]int{},
	}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func keyOf(item map[string]types.AttributeValue) string {
	if s, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func strAttr(item map[string]types.AttributeValue, name string) (string, bool) {
	s, ok := item[name].(*types.AttributeValueMemberS)
	if !ok {
		return "", false
	}
	return s.Value, true
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func (f *fakeDynamo) check(cond *string, current map[string]types.AttributeValue, values map[string]types.AttributeValue) bool {
	if cond == nil {
		return true
	}
	c := *cond
	if strings.Contains(c, "attribute_not_exists") && current != nil {
		return false
	}
	if strings.Contains(c, "attribute_exists(") && current == nil {
		return false
	}
	if strings.Contains(c, ":expected") {
		want := values[":expected"].(*types.AttributeValueMemberN).Value
		got, ok := current["version"].(*types.AttributeValueMemberN)
		if !ok || got.Value != want {
			return false
		}
	}
	return true
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["GetItem"]++
	return &dynamodb.GetItemOutput{Item: f.table(*in.TableName)[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["PutItem"]++
	t := f.table(*in.TableName)
	id := keyOf(in.Item)
	if !f.check(in.ConditionExpression, t[id], in.ExpressionAttributeValues) {
		return nil, conditionFailed()
	}
	t[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

// UpdateItem supports "SET #a = :a, #b = :b" expressions only.
func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["UpdateItem"]++
	t := f.table(*in.TableName)
	id := keyOf(in.Key)
	current := t[id]
	if !f.check(in.ConditionExpression, current, in.ExpressionAttributeValues) {
		return nil, conditionFailed()
	}

	next := map[string]types.AttributeValue{}
	for k, v := range current {
		next[k] = v
	}
	for k, v := range in.Key {
		next[k] = v
	}
	expr := strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET ")
	for _, assign := range strings.Split(expr, ",") {
		parts := strings.SplitN(strings.TrimSpace(assign), " = ", 2)
		if len(parts) != 2 {
			continue
		}
		name := parts[0]
		if real, ok := in.ExpressionAttributeNames[name]; ok {
			name = real
		}
		next[name] = in.ExpressionAttributeValues[strings.TrimSpace(parts[1])]
	}
	t[id] = next
	return &dynamodb.UpdateItemOutput{Attributes: next}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["DeleteItem"]++
	delete(f.table(*in.TableName), keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Query"]++
	items := f.match(*in.TableName, in.ExpressionAttributeNames["#k"], in.ExpressionAttributeValues[":v"])
	return &dynamodb.QueryOutput{Items: items, Count: int32(len(items))}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Scan"]++
	items := f.match(*in.TableName, in.ExpressionAttributeNames["#k"], in.ExpressionAttributeValues[":v"])
	return &dynamodb.ScanOutput{Items: items, Count: int32(len(items))}, nil
}

// match returns items whose attr equals want. An empty attr matches all.
func (f *fakeDynamo) match(table, attr string, want types.AttributeValue) []map[string]types.AttributeValue {
	var out []map[string]types.AttributeValue
	for _, item := range f.table(table) {
		if attr != "" {
			got, ok := strAttr(item, attr)
			w, _ := want.(*types.AttributeValueMemberS)
			if !ok || w == nil || got != w.Value {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}
