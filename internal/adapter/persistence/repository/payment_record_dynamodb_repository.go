package repository

import (
	"context"
	"encoding/json"
	"time"

	"pos_payments/internal/domain/entities"
	"pos_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentRecordsTableName = "payment_records"

type paymentRecordItem struct {
	PaymentID   string  `dynamodbav:"payment_id"`
	Amount      float64 `dynamodbav:"amount"`
	Status      string  `dynamodbav:"status"`
	BillDate    string  `dynamodbav:"bill_date"`
	ProcessedAt string  `dynamodbav:"processed_at"`
	PaymentRaw  string  `dynamodbav:"payment_raw,omitempty"`
}

// PaymentRecordDynamoRepository persists payment records in DynamoDB,
// selected with PAYMENT_STORE=DYNAMO.
//
// Table requirements:
//   - PK: payment_id (string)
//
// Writes are plain PutItems: repeated payments with the same id overwrite the
// previous record, matching the in-memory store semantics.

type PaymentRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb *dynamodb.Client) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_RECORDS_TABLE", defaultPaymentRecordsTableName),
	}
}

func (r *PaymentRecordDynamoRepository) Save(ctx context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, error) {
	it, err := toPaymentRecordItem(rec)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return rec, nil
}

func (r *PaymentRecordDynamoRepository) GetByID(ctx context.Context, paymentID string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func toPaymentRecordItem(rec entities.PaymentRecord) (paymentRecordItem, error) {
	raw, err := json.Marshal(rec.Payment)
	if err != nil {
		return paymentRecordItem{}, err
	}
	return paymentRecordItem{
		PaymentID:   rec.PaymentID,
		Amount:      rec.Bill.Amount,
		Status:      string(rec.Bill.Status),
		BillDate:    rec.Bill.Timestamp.UTC().Format(time.RFC3339Nano),
		ProcessedAt: rec.ProcessedAt.UTC().Format(time.RFC3339Nano),
		PaymentRaw:  string(raw),
	}, nil
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	billDate, _ := time.Parse(time.RFC3339Nano, it.BillDate)
	processedAt, _ := time.Parse(time.RFC3339Nano, it.ProcessedAt)

	var p entities.Payment
	if it.PaymentRaw != "" {
		_ = json.Unmarshal([]byte(it.PaymentRaw), &p)
	}

	return entities.PaymentRecord{
		PaymentID: it.PaymentID,
		Payment:   p,
		Bill: entities.Bill{
			PaymentID: it.PaymentID,
			Amount:    it.Amount,
			Status:    entities.BillStatus(it.Status),
			Timestamp: billDate,
		},
		ProcessedAt: processedAt,
	}
}
