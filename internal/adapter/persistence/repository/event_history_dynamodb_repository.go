package repository

import (
	"context"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDonationEventsTableName = "donation_events"

type historyItem struct {
	DonationID string `dynamodbav:"donation_id"`
	SK         string `dynamodbav:"sk"`
	ID         string `dynamodbav:"id"`
	Event      string `dynamodbav:"event"`
	Status     string `dynamodbav:"status"`
	Note       string `dynamodbav:"note,omitempty"`
	Metadata   string `dynamodbav:"metadata,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// EventHistoryDynamoRepository is the append-only donation event log.
//
// Table requirements:
//   - PK: donation_id (string)
//   - SK: sk (string, created_at#id)

type EventHistoryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEventHistoryRepository = (*EventHistoryDynamoRepository)(nil)

func NewEventHistoryDynamoRepository(ddb DynamoAPI) *EventHistoryDynamoRepository {
	return &EventHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DONATION_EVENTS_TABLE", defaultDonationEventsTableName),
	}
}

func (r *EventHistoryDynamoRepository) Append(ctx context.Context, e entities.HistoryEntry) error {
	createdAt := e.CreatedAt.UTC().Format(time.RFC3339Nano)
	av, err := attributevalue.MarshalMap(historyItem{
		DonationID: e.DonationID,
		SK:         createdAt + "#" + e.ID,
		ID:         e.ID,
		Event:      e.Event,
		Status:     e.Status,
		Note:       e.Note,
		Metadata:   string(e.Metadata),
		CreatedAt:  createdAt,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "sk",
		},
	})
	return err
}

func (r *EventHistoryDynamoRepository) ListByDonationID(ctx context.Context, donationID string, order entities.HistoryOrder, limit int) ([]entities.HistoryEntry, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#donation_id = :donation_id"),
		ExpressionAttributeNames: map[string]string{
			"#donation_id": "donation_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":donation_id": &types.AttributeValueMemberS{Value: donationID},
		},
		ScanIndexForward: aws.Bool(order != entities.HistoryOrderDesc),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	var items []historyItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	entries := make([]entities.HistoryEntry, 0, len(items))
	for _, it := range items {
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		e := entities.HistoryEntry{
			ID:         it.ID,
			DonationID: it.DonationID,
			Event:      it.Event,
			Status:     it.Status,
			Note:       it.Note,
			CreatedAt:  createdAt,
		}
		if it.Metadata != "" {
			e.Metadata = []byte(it.Metadata)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
