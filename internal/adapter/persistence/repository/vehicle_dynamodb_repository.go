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

const defaultVehiclesTableName = "vehicles"

type vehicleItem struct {
	ID           string `dynamodbav:"id"`
	Make         string `dynamodbav:"make"`
	Model        string `dynamodbav:"model"`
	Year         string `dynamodbav:"year"`
	LicensePlate string `dynamodbav:"license_plate"`
	Color        string `dynamodbav:"color"`
	PolicyNumber string `dynamodbav:"policy_number"`
	Premium      string `dynamodbav:"premium"`
	Status       string `dynamodbav:"status"`
}

// VehicleDynamoRepository reads the insured vehicle collection from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The dashboard treats the collection as read-only; writes happen upstream in
// the policy backend.

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) ListAll(ctx context.Context) ([]entities.Vehicle, error) {
	vehicles := make([]entities.Vehicle, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []vehicleItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			vehicles = append(vehicles, fromVehicleItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return vehicles, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:           it.ID,
		Make:         it.Make,
		Model:        it.Model,
		Year:         it.Year,
		LicensePlate: it.LicensePlate,
		Color:        it.Color,
		PolicyNumber: it.PolicyNumber,
		Premium:      it.Premium,
		Status:       entities.VehicleStatus(it.Status),
	}
}
