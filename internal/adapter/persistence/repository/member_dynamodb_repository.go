package repository

import (
	"context"

	"mensalidade_pix/internal/domain/entities"
	"mensalidade_pix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultMembersTableName = "members"

type memberItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
}

type MemberDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IMemberRepository = (*MemberDynamoRepository)(nil)

func NewMemberDynamoRepository(ddb DynamoDBAPI, tableName string) *MemberDynamoRepository {
	if tableName == "" {
		tableName = DefaultMembersTableName
	}
	return &MemberDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MemberDynamoRepository) GetByID(ctx context.Context, id string) (entities.Member, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Member{}, err
	}
	if len(out.Item) == 0 {
		return entities.Member{}, nil
	}

	var it memberItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Member{}, err
	}
	return entities.Member{ID: it.ID, Name: it.Name, Email: it.Email}, nil
}
