package repository

import (
	"context"

	"novo_seguros/internal/domain/entities"
	"novo_seguros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentSlipsTableName = "payment_slips"

type paymentSlipItem struct {
	ID           string `dynamodbav:"id"`
	Date         string `dynamodbav:"date"`
	Amount       string `dynamodbav:"amount"`
	Status       string `dynamodbav:"status"`
	Period       string `dynamodbav:"period"`
	CarID        string `dynamodbav:"car_id"`
	LicensePlate string `dynamodbav:"license_plate"`
	DueDate      string `dynamodbav:"due_date,omitempty"`
	UpdatedAt    string `dynamodbav:"updated_at,omitempty"`
}

// PaymentSlipDynamoRepository reads the payment slip collection from
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Amounts and dates are stored exactly as the billing backend formats them
// ("R$ 1.120,00", dd/mm/yyyy); parsing is the domain's job.

type PaymentSlipDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentSlipRepository = (*PaymentSlipDynamoRepository)(nil)

func NewPaymentSlipDynamoRepository(ddb *dynamodb.Client) *PaymentSlipDynamoRepository {
	return &PaymentSlipDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_SLIPS_TABLE", defaultPaymentSlipsTableName),
	}
}

func (r *PaymentSlipDynamoRepository) ListAll(ctx context.Context) ([]entities.PaymentSlip, error) {
	slips := make([]entities.PaymentSlip, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []paymentSlipItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			slips = append(slips, fromPaymentSlipItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return slips, nil
}

func (r *PaymentSlipDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentSlip, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.PaymentSlip{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentSlip{}, nil
	}

	var it paymentSlipItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentSlip{}, err
	}
	return fromPaymentSlipItem(it), nil
}

func fromPaymentSlipItem(it paymentSlipItem) entities.PaymentSlip {
	return entities.PaymentSlip{
		ID:           it.ID,
		Date:         it.Date,
		Amount:       it.Amount,
		Status:       entities.SlipStatus(it.Status),
		Period:       it.Period,
		CarID:        it.CarID,
		LicensePlate: it.LicensePlate,
		DueDate:      it.DueDate,
		UpdatedAt:    it.UpdatedAt,
	}
}
