package repository

import (
	"context"
	"errors"
	"time"

	"invoice_studio/internal/domain/entities"
	"invoice_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "images"

type catalogItem struct {
	Name      string `dynamodbav:"name"`
	Path      string `dynamodbav:"path"`
	CreatedAt string `dynamodbav:"created_at"`
}

// CatalogDynamoRepository persists CatalogEntry records in DynamoDB.
//
// Table requirements:
//   - PK: name (string)
//
// The name doubles as the picker key, so the conditional put below is
// what keeps one entry per name (a duplicate registration is rejected
// instead of shadowing the first upload in unspecified list order).

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) List(ctx context.Context) ([]entities.CatalogEntry, error) {
	var out []entities.CatalogEntry

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []catalogItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromCatalogItem(it))
		}
	}
	return out, nil
}

func (r *CatalogDynamoRepository) GetByName(ctx context.Context, name string) (entities.CatalogEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogEntry{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogEntry{}, err
	}
	return fromCatalogItem(it), nil
}

func (r *CatalogDynamoRepository) Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	it := toCatalogItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CatalogEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#name)"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CatalogEntry{}, interfaces.ErrCatalogEntryExists
		}
		return entities.CatalogEntry{}, err
	}
	return e, nil
}

func toCatalogItem(e entities.CatalogEntry) catalogItem {
	return catalogItem{
		Name:      e.Name,
		Path:      e.Path,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCatalogItem(it catalogItem) entities.CatalogEntry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.CatalogEntry{
		Name:      it.Name,
		Path:      it.Path,
		CreatedAt: createdAt,
	}
}
