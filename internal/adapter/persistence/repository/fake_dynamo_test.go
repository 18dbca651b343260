package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// fakeDynamo is an in-memory table set that understands the handful of
// expressions the repositories send.
type fakeDynamo struct {
	mu         sync.Mutex
	tables     map[string]map[string]map[string]types.AttributeValue
	updates    []*dynamodb.UpdateItemInput
	updateErrs []error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func strAttr(item map[string]types.AttributeValue, key string) string {
	if s, ok := item[key].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func itemKey(item map[string]types.AttributeValue) string {
	if sk := strAttr(item, "sk"); sk != "" {
		return strAttr(item, "donation_id") + "|" + sk
	}
	return strAttr(item, "id")
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(aws.ToString(in.TableName))
	key := itemKey(in.Item)
	if strings.HasPrefix(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		if _, exists := t[key]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	}
	t[key] = copyItem(in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.table(aws.ToString(in.TableName))[strAttr(in.Key, "id")]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, in)
	if len(f.updateErrs) > 0 {
		err := f.updateErrs[0]
		f.updateErrs = f.updateErrs[1:]
		if err != nil {
			return nil, err
		}
	}

	t := f.table(aws.ToString(in.TableName))
	key := strAttr(in.Key, "id")
	item, exists := t[key]
	names, values := in.ExpressionAttributeNames, in.ExpressionAttributeValues

	switch cond := aws.ToString(in.ConditionExpression); {
	case strings.HasPrefix(cond, "attribute_exists"):
		if !exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
		}
	case cond == "#status = :current":
		if !exists || strAttr(item, "status") != strAttr(values, ":current") {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("status changed")}
		}
	}
	item = copyItem(item)

	expr := aws.ToString(in.UpdateExpression)
	setPart, addPart, _ := strings.Cut(expr, " ADD ")
	for _, assign := range strings.Split(strings.TrimPrefix(setPart, "SET "), ", ") {
		name, value, ok := strings.Cut(assign, " = ")
		if ok {
			item[names[name]] = values[value]
		}
	}
	if addPart != "" {
		fields := strings.Fields(addPart)
		attr := names[fields[0]]
		current := numberAttr(item, attr)
		delta, _ := decimal.NewFromString(values[fields[1]].(*types.AttributeValueMemberN).Value)
		item[attr] = numberValue(current.Add(delta))
	}
	t[key] = item

	out := &dynamodb.UpdateItemOutput{}
	if in.ReturnValues == types.ReturnValueAllNew {
		out.Attributes = copyItem(item)
	}
	return out, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(aws.ToString(in.TableName))

	var matches []map[string]types.AttributeValue
	if in.IndexName != nil {
		want := strAttr(in.ExpressionAttributeValues, ":tid")
		for _, item := range t {
			if strAttr(item, "transaction_id") == want {
				matches = append(matches, copyItem(item))
			}
		}
	} else {
		want := strAttr(in.ExpressionAttributeValues, ":donation_id")
		for _, item := range t {
			if strAttr(item, "donation_id") == want {
				matches = append(matches, copyItem(item))
			}
		}
		forward := aws.ToBool(in.ScanIndexForward)
		sort.Slice(matches, func(i, j int) bool {
			if forward {
				return strAttr(matches[i], "sk") < strAttr(matches[j], "sk")
			}
			return strAttr(matches[i], "sk") > strAttr(matches[j], "sk")
		})
	}
	if in.Limit != nil && int(*in.Limit) < len(matches) {
		matches = matches[:*in.Limit]
	}
	return &dynamodb.QueryOutput{Items: matches, Count: int32(len(matches))}, nil
}
