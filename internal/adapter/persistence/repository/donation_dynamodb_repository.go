package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDonationsTableName = "donations"
	donationsTransactionIndex = "transaction_id-index"
	maxStatusUpdateAttempts   = 3
)

type donationItem struct {
	ID            string `dynamodbav:"id"`
	Currency      string `dynamodbav:"currency"`
	DonorName     string `dynamodbav:"donor_name"`
	DonorEmail    string `dynamodbav:"donor_email"`
	CampaignID    string `dynamodbav:"campaign_id,omitempty"`
	PaymentMethod string `dynamodbav:"payment_method"`
	Status        string `dynamodbav:"status"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	RawPayload    string `dynamodbav:"raw_payload,omitempty"`
	PaymentError  string `dynamodbav:"payment_error,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// DonationDynamoRepository is the Donation Store on DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: transaction_id-index (PK: transaction_id), sparse
//
// The amount is stored as a DynamoDB number.

type DonationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDonationRepository = (*DonationDynamoRepository)(nil)

func NewDonationDynamoRepository(ddb DynamoAPI) *DonationDynamoRepository {
	return &DonationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DONATIONS_TABLE", defaultDonationsTableName),
	}
}

func (r *DonationDynamoRepository) Create(ctx context.Context, d entities.Donation) (entities.Donation, error) {
	av, err := marshalDonation(d)
	if err != nil {
		return entities.Donation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Donation{}, err
	}
	return d, nil
}

func (r *DonationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Donation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Donation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Donation{}, nil
	}
	return unmarshalDonation(out.Item)
}

// UpdateStatus moves the donation to status only if nobody changed it since
// it was read. A lost race is re-evaluated against the winner's status, so
// two finalizers racing to completed yield exactly one (true, nil).
func (r *DonationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DonationStatus) (bool, error) {
	for attempt := 0; attempt < maxStatusUpdateAttempts; attempt++ {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return false, err
		}
		if current.ID == "" {
			return false, nil
		}
		if current.Status == status {
			return false, nil
		}
		if !entities.CanTransition(current.Status, status) {
			return false, entities.ErrInvalidStatusTransition
		}

		_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression: aws.String("#status = :current"),
			UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#status":     "status",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":current":    &types.AttributeValueMemberS{Value: string(current.Status)},
				":status":     &types.AttributeValueMemberS{Value: string(status)},
				":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
			},
		})
		if err == nil {
			return true, nil
		}
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return false, err
		}
	}
	return false, fmt.Errorf("donation %s: status changed concurrently %d times", id, maxStatusUpdateAttempts)
}

func (r *DonationDynamoRepository) UpdateMeta(ctx context.Context, id string, meta entities.DonationMeta) error {
	if meta.IsEmpty() {
		return nil
	}

	expr := "SET #updated_at = :updated_at"
	names := map[string]string{"#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	set := func(attr, value string) {
		expr += fmt.Sprintf(", #%s = :%s", attr, attr)
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: value}
	}
	if meta.TransactionID != "" {
		set("transaction_id", meta.TransactionID)
	}
	if len(meta.RawPayload) > 0 {
		set("raw_payload", string(meta.RawPayload))
	}
	if meta.PaymentError != "" {
		set("payment_error", meta.PaymentError)
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
	})
	return err
}

// FindByTransactionID reads the GSI, which is eventually consistent; the
// gateways store the reference before any webhook can name it.
func (r *DonationDynamoRepository) FindByTransactionID(ctx context.Context, transactionID string) (entities.Donation, error) {
	if transactionID == "" {
		return entities.Donation{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(donationsTransactionIndex),
		KeyConditionExpression: aws.String("transaction_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: transactionID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Donation{}, err
	}
	if len(out.Items) == 0 {
		return entities.Donation{}, nil
	}
	return unmarshalDonation(out.Items[0])
}

func marshalDonation(d entities.Donation) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(donationItem{
		ID:            d.ID,
		Currency:      d.Currency,
		DonorName:     d.DonorName,
		DonorEmail:    d.DonorEmail,
		CampaignID:    d.CampaignID,
		PaymentMethod: string(d.PaymentMethod),
		Status:        string(d.Status),
		TransactionID: d.TransactionID,
		RawPayload:    string(d.RawPayload),
		PaymentError:  d.PaymentError,
		CreatedAt:     d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	av["amount"] = numberValue(d.Amount)
	return av, nil
}

func unmarshalDonation(item map[string]types.AttributeValue) (entities.Donation, error) {
	var it donationItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Donation{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	d := entities.Donation{
		ID:            it.ID,
		Amount:        numberAttr(item, "amount"),
		Currency:      it.Currency,
		DonorName:     it.DonorName,
		DonorEmail:    it.DonorEmail,
		CampaignID:    it.CampaignID,
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		Status:        entities.DonationStatus(it.Status),
		TransactionID: it.TransactionID,
		PaymentError:  it.PaymentError,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	if it.RawPayload != "" {
		d.RawPayload = []byte(it.RawPayload)
	}
	return d, nil
}
