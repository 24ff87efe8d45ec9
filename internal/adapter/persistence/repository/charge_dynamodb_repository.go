package repository

import (
	"context"
	"fmt"
	"time"

	"mensalidade_pix/internal/domain/entities"
	"mensalidade_pix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const DefaultChargesTableName = "monthly_charges"

type chargeItem struct {
	ID               string  `dynamodbav:"id"`
	MemberID         string  `dynamodbav:"memberId,omitempty"`
	MemberName       string  `dynamodbav:"memberName"`
	MonthYear        string  `dynamodbav:"monthYear"`
	TotalDue         float64 `dynamodbav:"totalDue"`
	AmountPaid       float64 `dynamodbav:"amountPaid"`
	Status           string  `dynamodbav:"status"`
	GatewayPaymentID string  `dynamodbav:"gatewayPaymentId,omitempty"`
	PaidAt           string  `dynamodbav:"paidAt,omitempty"`
	UpdatedAt        string  `dynamodbav:"updatedAt,omitempty"`
}

// ChargeDynamoRepository persists monthly charges in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Charges are created by the membership back office; this repository only
// reads them and updates the payment fields.
type ChargeDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IChargeRepository = (*ChargeDynamoRepository)(nil)

func NewChargeDynamoRepository(ddb DynamoDBAPI, tableName string) *ChargeDynamoRepository {
	if tableName == "" {
		tableName = DefaultChargesTableName
	}
	return &ChargeDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *ChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Charge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Charge{}, err
	}
	if len(out.Item) == 0 {
		return entities.Charge{}, nil
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

// UpdateGatewayPaymentID stores the latest gateway payment. Last write wins.
func (r *ChargeDynamoRepository) UpdateGatewayPaymentID(ctx context.Context, id string, gatewayPaymentID string) error {
	now := r.now().Format(time.RFC3339Nano)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #gateway_payment_id = :pid, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":        &types.AttributeValueMemberS{Value: gatewayPaymentID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#gateway_payment_id": "gatewayPaymentId",
			"#updated_at":         "updatedAt",
		}, map[string]string{"#id": "id"}),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return fmt.Errorf("charge %s: %w", id, ErrItemNotFound)
		}
		return err
	}
	return nil
}

// MarkPaid copies totalDue into amountPaid and flips the status in one
// conditional write, so concurrent or repeated notifications settle once.
func (r *ChargeDynamoRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) (bool, error) {
	now := r.now().Format(time.RFC3339Nano)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :paid"),
		UpdateExpression:    aws.String("SET #status = :paid, #amount_paid = #total_due, #paid_at = :paid_at, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":       &types.AttributeValueMemberS{Value: string(entities.ChargeStatusPaid)},
			":paid_at":    &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":      "status",
			"#amount_paid": "amountPaid",
			"#total_due":   "totalDue",
			"#paid_at":     "paidAt",
			"#updated_at":  "updatedAt",
		}, map[string]string{"#id": "id"}),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func fromChargeItem(it chargeItem) entities.Charge {
	paidAt, _ := time.Parse(time.RFC3339Nano, it.PaidAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	status := entities.ChargeStatus(it.Status)
	if status == "" {
		status = entities.ChargeStatusPending
	}
	return entities.Charge{
		ID:               it.ID,
		MemberID:         it.MemberID,
		MemberName:       it.MemberName,
		MonthYear:        it.MonthYear,
		TotalDue:         decimal.NewFromFloat(it.TotalDue),
		AmountPaid:       decimal.NewFromFloat(it.AmountPaid),
		Status:           status,
		GatewayPaymentID: it.GatewayPaymentID,
		PaidAt:           paidAt,
		UpdatedAt:        updatedAt,
	}
}
