package dynamo

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/lamontana/storefront/internal/core"
)

type ProductItem struct {
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Kind        string `dynamodbav:"kind"`
	Category    string `dynamodbav:"category"`
	Price       int    `dynamodbav:"price"`
	Available   bool   `dynamodbav:"available"`
	ImageRes    string `dynamodbav:"image_res,omitempty"`
	ImageURL    string `dynamodbav:"image_url,omitempty"`
	CopyBased   bool   `dynamodbav:"copy_based"`
}

// ToCore reports false for unavailable or nameless items.
func (i ProductItem) ToCore() (core.Product, bool) {
	if !i.Available || strings.TrimSpace(i.Name) == "" {
		return core.Product{}, false
	}
	cat, err := core.ParseCategory(i.Category)
	if err != nil {
		cat = core.CategoryFromKind(i.Kind)
	}
	return core.Product{
		Name:        strings.TrimSpace(i.Name),
		Description: i.Description,
		Price:       i.Price,
		Category:    cat,
		ImageRes:    i.ImageRes,
		ImageURL:    i.ImageURL,
		CopyBased:   i.CopyBased,
	}, true
}

func productItemFromCore(p core.Product) ProductItem {
	return ProductItem{
		Name:        strings.TrimSpace(p.Name),
		Description: p.Description,
		Kind:        strings.ToLower(string(p.Category)),
		Category:    string(p.Category),
		Price:       p.Price,
		Available:   true,
		ImageRes:    p.ImageRes,
		ImageURL:    p.ImageURL,
		CopyBased:   p.CopyBased,
	}
}

type ProductRepo struct {
	client *dynamodb.Client
}

func NewProductRepo(client *dynamodb.Client) *ProductRepo {
	return &ProductRepo{client: client}
}

func (r *ProductRepo) List(ctx context.Context) ([]core.Product, error) {
	p := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(TableProducts),
	})

	products := []core.Product{}
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("products.scan: %w", err)
		}
		var items []ProductItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("products.unmarshal: %w", err)
		}
		for _, item := range items {
			if prod, ok := item.ToCore(); ok {
				products = append(products, prod)
			}
		}
	}

	// Scan order is arbitrary; keep the catalog stable.
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (r *ProductRepo) GetByName(ctx context.Context, name string) (core.Product, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(TableProducts),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: strings.TrimSpace(name)},
		},
	})
	if err != nil {
		return core.Product{}, fmt.Errorf("products.getItem: %w", err)
	}
	if out.Item == nil {
		return core.Product{}, core.ErrProductNotFound
	}

	var item ProductItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return core.Product{}, fmt.Errorf("products.unmarshal: %w", err)
	}
	prod, ok := item.ToCore()
	if !ok {
		return core.Product{}, core.ErrProductNotFound
	}
	return prod, nil
}

// UpsertByName overwrites the item keyed by the product name.
func (r *ProductRepo) UpsertByName(ctx context.Context, p core.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(productItemFromCore(p))
	if err != nil {
		return fmt.Errorf("products.marshal: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(TableProducts),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("products.putItem: %w", err)
	}
	return nil
}
