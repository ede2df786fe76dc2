package repository

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"smartmenu/internal/domain/entities"
	"smartmenu/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

const defaultMenuTableName = "menu_items"

type menuItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Price       string `dynamodbav:"price"`
	Category    string `dynamodbav:"category"`
	Image       string `dynamodbav:"image,omitempty"`
	Position    int    `dynamodbav:"position"`
}

// MenuDynamoRepository loads the catalog from a DynamoDB table.
//
// Table requirements:
//   - PK: id (string)
//   - price is stored as a decimal string to keep exact cents
//   - position (number) defines display order; ties fall back to id
//
// The table is scanned once at startup, so no index is needed.

type MenuDynamoRepository struct {
	ddb       MenuTableAPI
	tableName string
}

// MenuTableAPI is the subset of *dynamodb.Client used by MenuDynamoRepository.
type MenuTableAPI interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

var _ interfaces.ICatalogProvider = (*MenuDynamoRepository)(nil)

func NewMenuDynamoRepository(ddb MenuTableAPI) *MenuDynamoRepository {
	return &MenuDynamoRepository{
		ddb:       ddb,
		tableName: menuTableName(),
	}
}

// menuTableName reads MENU_TABLE, falling back to menu_items.
func menuTableName() string {
	if v := strings.TrimSpace(os.Getenv("MENU_TABLE")); v != "" {
		return v
	}
	return defaultMenuTableName
}

func (r *MenuDynamoRepository) LoadMenu(ctx context.Context) ([]entities.MenuItem, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	var rows []menuItem
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it menuItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			rows = append(rows, it)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Position != rows[j].Position {
			return rows[i].Position < rows[j].Position
		}
		return rows[i].ID < rows[j].ID
	})

	items := make([]entities.MenuItem, 0, len(rows))
	for _, it := range rows {
		mi, err := fromMenuItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, mi)
	}
	return items, nil
}

// SeedMenu writes items to the table, overwriting rows with the same id.
// Positions follow the slice order.
func (r *MenuDynamoRepository) SeedMenu(ctx context.Context, items []entities.MenuItem) error {
	for i, m := range items {
		av, err := attributevalue.MarshalMap(toMenuItem(m, i))
		if err != nil {
			return err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		}); err != nil {
			return fmt.Errorf("seed menu item %q: %w", m.ID, err)
		}
	}
	return nil
}

func toMenuItem(m entities.MenuItem, position int) menuItem {
	return menuItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price.String(),
		Category:    m.Category,
		Image:       m.Image,
		Position:    position,
	}
}

func fromMenuItem(it menuItem) (entities.MenuItem, error) {
	price, err := decimal.NewFromString(it.Price)
	if err != nil {
		return entities.MenuItem{}, fmt.Errorf("menu item %q: invalid price %q: %w", it.ID, it.Price, err)
	}
	return entities.MenuItem{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       price,
		Category:    it.Category,
		Image:       it.Image,
	}, nil
}
