package dynamo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/lamontana/storefront/internal/core"
)

type OrderLineItem struct {
	Name      string `dynamodbav:"name"`
	Category  string `dynamodbav:"category"`
	UnitPrice int    `dynamodbav:"unit_price"`
	Quantity  int    `dynamodbav:"quantity"`
}

type PrintJobItem struct {
	PageCount         int    `dynamodbav:"page_count"`
	ColorMode         string `dynamodbav:"color_mode"`
	Duplex            bool   `dynamodbav:"duplex"`
	RingBinding       bool   `dynamodbav:"ring_binding"`
	SoftcoverBinding  bool   `dynamodbav:"softcover_binding"`
	Total             int    `dynamodbav:"total"`
	PagesFromDocument bool   `dynamodbav:"pages_from_document"`
}

type OrderItem struct {
	ID         string          `dynamodbav:"id"`
	Number     string          `dynamodbav:"number"`
	UserID     string          `dynamodbav:"user_id"`
	Lines      []OrderLineItem `dynamodbav:"lines"`
	CartTotal  int             `dynamodbav:"cart_total"`
	PrintJob   *PrintJobItem   `dynamodbav:"print_job,omitempty"`
	JobTotal   int             `dynamodbav:"job_total"`
	Total      int             `dynamodbav:"total"`
	Address    string          `dynamodbav:"address"`
	PostalCode string          `dynamodbav:"postal_code"`
	Phone      string          `dynamodbav:"phone"`
	Notes      string          `dynamodbav:"notes,omitempty"`
	Shipping   string          `dynamodbav:"shipping"`
	Status     string          `dynamodbav:"status"`
	CreatedAt  string          `dynamodbav:"created_at"` // RFC3339Nano, sort key of the user index
}

func (i OrderItem) ToCore() core.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, i.CreatedAt)

	lines := make([]core.CartLine, 0, len(i.Lines))
	for _, l := range i.Lines {
		lines = append(lines, core.CartLine{
			Product:  core.Product{Name: l.Name, Category: core.Category(l.Category), Price: l.UnitPrice},
			Quantity: l.Quantity,
		})
	}
	var quote *core.PrintQuote
	if j := i.PrintJob; j != nil {
		quote = &core.PrintQuote{
			Job: core.PrintJob{
				PageCount:        j.PageCount,
				ColorMode:        core.ColorMode(j.ColorMode),
				Duplex:           j.Duplex,
				RingBinding:      j.RingBinding,
				SoftcoverBinding: j.SoftcoverBinding,
			},
			Total:             j.Total,
			PagesFromDocument: j.PagesFromDocument,
		}
	}
	var outcome core.ShippingOutcome
	_ = outcome.UnmarshalText([]byte(i.Shipping))

	return core.Order{
		ID:        i.ID,
		Number:    i.Number,
		UserID:    i.UserID,
		Lines:     lines,
		CartTotal: i.CartTotal,
		PrintJob:  quote,
		JobTotal:  i.JobTotal,
		Total:     i.Total,
		Shipping: core.ShippingDetails{
			Address:    i.Address,
			PostalCode: i.PostalCode,
			Phone:      i.Phone,
			Notes:      i.Notes,
			Outcome:    outcome,
		},
		Status:    core.OrderStatus(i.Status),
		CreatedAt: createdAt,
	}
}

func orderItemFromCore(o core.Order) OrderItem {
	lines := make([]OrderLineItem, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineItem{
			Name:      l.Product.Name,
			Category:  string(l.Product.Category),
			UnitPrice: l.Product.Price,
			Quantity:  l.Quantity,
		})
	}
	var job *PrintJobItem
	if q := o.PrintJob; q != nil {
		job = &PrintJobItem{
			PageCount:         q.Job.PageCount,
			ColorMode:         string(q.Job.ColorMode),
			Duplex:            q.Job.Duplex,
			RingBinding:       q.Job.RingBinding,
			SoftcoverBinding:  q.Job.SoftcoverBinding,
			Total:             q.Total,
			PagesFromDocument: q.PagesFromDocument,
		}
	}
	return OrderItem{
		ID:         o.ID,
		Number:     o.Number,
		UserID:     o.UserID,
		Lines:      lines,
		CartTotal:  o.CartTotal,
		PrintJob:   job,
		JobTotal:   o.JobTotal,
		Total:      o.Total,
		Address:    o.Shipping.Address,
		PostalCode: o.Shipping.PostalCode,
		Phone:      o.Shipping.Phone,
		Notes:      o.Shipping.Notes,
		Shipping:   o.Shipping.Outcome.String(),
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

type OrderRepo struct {
	client *dynamodb.Client
	clock  func() time.Time
}

func NewOrderRepo(client *dynamodb.Client) *OrderRepo {
	return &OrderRepo{client: client, clock: time.Now}
}

func (r *OrderRepo) Create(ctx context.Context, order core.Order) error {
	av, err := attributevalue.MarshalMap(orderItemFromCore(order))
	if err != nil {
		return fmt.Errorf("orders.marshal: %w", err)
	}

	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name("id"))).
		Build()
	if err != nil {
		return fmt.Errorf("orders.buildExpr: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(TableOrders),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		if isConditionFailed(err) {
			return core.ErrOrderExists
		}
		return fmt.Errorf("orders.putItem: %w", err)
	}
	return nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (core.Order, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(TableOrders),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return core.Order{}, fmt.Errorf("orders.getItem: %w", err)
	}
	if out.Item == nil {
		return core.Order{}, core.ErrOrderNotFound
	}

	var item OrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return core.Order{}, fmt.Errorf("orders.unmarshal: %w", err)
	}
	return item.ToCore(), nil
}

func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (core.Order, error) {
	keyCond := expression.Key("number").Equal(expression.Value(number))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return core.Order{}, fmt.Errorf("orders.buildExpr: %w", err)
	}

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(TableOrders),
		IndexName:                 aws.String(GSIOrdersNumber),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return core.Order{}, fmt.Errorf("orders.queryByNumber: %w", err)
	}
	if len(out.Items) == 0 {
		return core.Order{}, core.ErrOrderNotFound
	}

	var item OrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &item); err != nil {
		return core.Order{}, fmt.Errorf("orders.unmarshal: %w", err)
	}
	return item.ToCore(), nil
}

// ListByUser reads the user's index newest first and slices offset/limit
// in memory; a customer's order history is small.
func (r *OrderRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]core.Order, int64, error) {
	keyCond := expression.Key("user_id").Equal(expression.Value(userID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, 0, fmt.Errorf("orders.buildExpr: %w", err)
	}

	p := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(TableOrders),
		IndexName:                 aws.String(GSIOrdersUser),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false),
	})

	var items []OrderItem
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("orders.queryByUser: %w", err)
		}
		var page []OrderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, 0, fmt.Errorf("orders.unmarshal: %w", err)
		}
		items = append(items, page...)
	}

	total := int64(len(items))
	if offset >= len(items) {
		return []core.Order{}, total, nil
	}
	end := min(offset+limit, len(items))

	orders := make([]core.Order, 0, end-offset)
	for _, item := range items[offset:end] {
		orders = append(orders, item.ToCore())
	}
	return orders, total, nil
}

func (r *OrderRepo) NextOrderNumber(ctx context.Context) (string, error) {
	year := r.clock().Year()

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(TableCounters),
		Key: map[string]types.AttributeValue{
			"counter_name": &types.AttributeValueMemberS{Value: fmt.Sprintf("order_%d", year)},
		},
		UpdateExpression: aws.String("SET counter_value = if_not_exists(counter_value, :zero) + :inc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":inc":  &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return "", fmt.Errorf("counters.updateItem: %w", err)
	}

	n, ok := out.Attributes["counter_value"].(*types.AttributeValueMemberN)
	if !ok {
		return "", fmt.Errorf("counters.updateItem: missing counter_value")
	}
	seq, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return "", fmt.Errorf("counters.parse: %w", err)
	}
	return core.FormatOrderNumber(year, seq), nil
}
