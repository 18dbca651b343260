package repository

import (
	"context"
	"errors"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultCampaignsTableName = "campaigns"

type campaignItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Currency  string `dynamodbav:"currency"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CampaignDynamoRepository persists Campaign entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// goal and raised are DynamoDB numbers so the raised total can be moved
// with an atomic ADD.

type CampaignDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICampaignRepository = (*CampaignDynamoRepository)(nil)

func NewCampaignDynamoRepository(ddb DynamoAPI) *CampaignDynamoRepository {
	return &CampaignDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CAMPAIGNS_TABLE", defaultCampaignsTableName),
	}
}

func (r *CampaignDynamoRepository) Create(ctx context.Context, c entities.Campaign) (entities.Campaign, error) {
	av, err := attributevalue.MarshalMap(toCampaignItem(c))
	if err != nil {
		return entities.Campaign{}, err
	}
	av["goal"] = numberValue(c.Goal)
	av["raised"] = numberValue(c.Raised)

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	return c, nil
}

func (r *CampaignDynamoRepository) GetByID(ctx context.Context, id string) (entities.Campaign, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	if len(out.Item) == 0 {
		return entities.Campaign{}, nil
	}
	return fromCampaignAttributes(out.Item)
}

func (r *CampaignDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.CampaignStatus) (entities.Campaign, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// AddRaised moves the raised total by delta, which is negative for refunds.
func (r *CampaignDynamoRepository) AddRaised(ctx context.Context, id string, delta decimal.Decimal) (entities.Campaign, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #updated_at = :updated_at ADD #raised :delta"
		vals := map[string]types.AttributeValue{
			":delta":      numberValue(delta),
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#raised":     "raised",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CampaignDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Campaign, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Campaign{}, nil
		}
		return entities.Campaign{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Campaign{}, nil
	}
	return fromCampaignAttributes(out.Attributes)
}

func toCampaignItem(c entities.Campaign) campaignItem {
	return campaignItem{
		ID:        c.ID,
		Title:     c.Title,
		Currency:  c.Currency,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCampaignAttributes(item map[string]types.AttributeValue) (entities.Campaign, error) {
	var it campaignItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Campaign{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Campaign{
		ID:        it.ID,
		Title:     it.Title,
		Goal:      numberAttr(item, "goal"),
		Raised:    numberAttr(item, "raised"),
		Currency:  it.Currency,
		Status:    entities.CampaignStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
