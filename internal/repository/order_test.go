package repository

import (
	"context"
	"fmt"
	"shop-admin/internal/client"
	"shop-admin/internal/model"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := client.InitDBClient("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func strPtr(s string) *string { return &s }

// fixture: three orders, one hour apart, the newest last.
func seedFixture(t *testing.T, db *gorm.DB) {
	t.Helper()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&[]model.User{
		{ID: "u1", Email: "admin@shop.co"},
		{ID: "u2", Email: "Buyer@Example.com"},
	}).Error)
	require.NoError(t, db.Create(&[]model.Product{
		{ID: "px", Name: "Product X", Price: decimal.RequireFromString("100")},
		{ID: "py", Name: "Product Y", Price: decimal.RequireFromString("50")},
		{ID: "pz", Name: "Product Z", Price: decimal.RequireFromString("19.99")},
	}).Error)
	require.NoError(t, db.Create(&[]model.Order{
		{ID: "ord_A", Customer: "Alice", Status: model.OrderStatusPaid, UserID: strPtr("u2"), CreatedAt: base},
		{ID: "ord_B", Customer: "Bob 100%_off", Status: model.OrderStatusAwaitingPayment, CreatedAt: base.Add(time.Hour)},
		{ID: "ord_C", Customer: "Carol", Status: model.OrderStatusShipped, UserID: strPtr("u1"), CreatedAt: base.Add(2 * time.Hour)},
	}).Error)
	require.NoError(t, db.Create(&[]model.OrderItem{
		{OrderID: "ord_A", ProductID: "px", Quantity: 2},
		{OrderID: "ord_B", ProductID: "py", Quantity: 1},
		{OrderID: "ord_C", ProductID: "pz", Quantity: 3},
		{OrderID: "ord_C", ProductID: "px", Quantity: 1},
	}).Error)
}

func orderIDs(orders []*model.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestFindWithItemsAndProducts_NoFilterNewestFirst(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewOrderRepository(db)

	orders, err := repo.FindWithItemsAndProducts(context.Background(), model.OrderFilter{})
	require.NoError(t, err)

	assert.Equal(t, []string{"ord_C", "ord_B", "ord_A"}, orderIDs(orders))
}

func TestFindWithItemsAndProducts_EagerLoadsGraph(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewOrderRepository(db)

	orders, err := repo.FindWithItemsAndProducts(context.Background(), model.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 3)

	c := orders[0]
	require.NotNil(t, c.User)
	assert.Equal(t, "admin@shop.co", c.User.Email)
	require.Len(t, c.Items, 2)
	require.NotNil(t, c.Items[0].Product)
	assert.Equal(t, "Product Z", c.Items[0].Product.Name)
	assert.True(t, decimal.RequireFromString("19.99").Equal(c.Items[0].Product.Price))
	assert.Equal(t, int32(3), c.Items[0].Quantity)
	assert.Equal(t, "Product X", c.Items[1].Product.Name)

	b := orders[1]
	assert.Nil(t, b.User)
	require.Len(t, b.Items, 1)
	assert.Equal(t, "Product Y", b.Items[0].Product.Name)
}

func TestFindWithItemsAndProducts_Filters(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewOrderRepository(db)

	tests := []struct {
		name   string
		status string
		q      string
		want   []string
	}{
		{name: "status exact", status: string(model.OrderStatusPaid), want: []string{"ord_A"}},
		{name: "unknown status", status: "cancelled", want: []string{}},
		{name: "id substring any case", q: "ORD_b", want: []string{"ord_B"}},
		{name: "customer substring any case", q: "caROL", want: []string{"ord_C"}},
		{name: "email substring", q: "admin@shop", want: []string{"ord_C"}},
		{name: "email any case", q: "buyer@example", want: []string{"ord_A"}},
		{name: "matches several", q: "ord_", want: []string{"ord_C", "ord_B", "ord_A"}},
		{name: "whitespace only is no filter", q: "   ", want: []string{"ord_C", "ord_B", "ord_A"}},
		{name: "trimmed term", q: "  alice ", want: []string{"ord_A"}},
		{name: "percent is literal", q: "100%", want: []string{"ord_B"}},
		{name: "underscore is literal", q: "%_o", want: []string{"ord_B"}},
		{name: "lone percent matches only itself", q: "%", want: []string{"ord_B"}},
		{name: "escape char is literal", q: "!", want: []string{}},
		{name: "status and search compose", status: string(model.OrderStatusShipped), q: "alice", want: []string{}},
		{name: "status and search both hold", status: string(model.OrderStatusShipped), q: "shop.co", want: []string{"ord_C"}},
		{name: "no match", q: "nobody", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := repo.FindWithItemsAndProducts(context.Background(), model.NewOrderFilter(tt.status, tt.q))
			require.NoError(t, err)
			assert.Equal(t, tt.want, orderIDs(orders))
		})
	}
}

func TestFindWithItemsAndProducts_GuestOrderNeverMatchesEmail(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewOrderRepository(db)

	// ord_B has no user; "example" only appears in u2's email
	orders, err := repo.FindWithItemsAndProducts(context.Background(), model.NewOrderFilter("", "example"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ord_A"}, orderIDs(orders))
}

func TestFindWithItemsAndProducts_QueryError(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&model.OrderItem{}))
	repo := NewOrderRepository(db)

	require.NoError(t, db.Create(&model.Order{ID: "ord_X", Customer: "X", Status: model.OrderStatusPaid}).Error)

	orders, err := repo.FindWithItemsAndProducts(context.Background(), model.OrderFilter{})
	assert.Error(t, err)
	assert.Nil(t, orders)
}

func TestSeed_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, NewUserRepository(db).Seed(ctx, "admin@shop.co"))
		require.NoError(t, NewProductRepository(db).Seed(ctx))
		require.NoError(t, NewOrderRepository(db).Seed(ctx))
	}

	var orders, items int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&model.OrderItem{}).Count(&items).Error)
	assert.Equal(t, int64(3), orders)
	assert.Equal(t, int64(4), items)

	found, err := NewOrderRepository(db).FindWithItemsAndProducts(ctx, model.NewOrderFilter("", "admin@shop"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ord_1002"}, orderIDs(found))
}

func TestFindWithItemsAndProducts_SearchFoldsNonASCII(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewOrderRepository(db)

	require.NoError(t, db.Create(&model.User{ID: "u3", Email: "Zoë@Café.fr"}).Error)
	require.NoError(t, db.Create(&[]model.Order{
		{ID: "ord_E", Customer: "Émile Zoë", Status: model.OrderStatusPaid, CreatedAt: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "ord_F", Customer: "Frank", Status: model.OrderStatusPaid, UserID: strPtr("u3"), CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}).Error)

	tests := []struct {
		q    string
		want []string
	}{
		{q: "Émile", want: []string{"ord_E"}},
		{q: "émile", want: []string{"ord_E"}},
		{q: "ÉMILE", want: []string{"ord_E"}},
		{q: "zoË", want: []string{"ord_E", "ord_F"}},
		{q: "café.FR", want: []string{"ord_F"}},
		{q: "Zoë@Café.fr", want: []string{"ord_F"}},
	}

	for _, tt := range tests {
		t.Run(tt.q, func(t *testing.T) {
			orders, err := repo.FindWithItemsAndProducts(context.Background(), model.NewOrderFilter("", tt.q))
			require.NoError(t, err)
			assert.Equal(t, tt.want, orderIDs(orders))
		})
	}
}

func TestFindWithItemsAndProducts_StatusIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	require.NoError(t, db.Create(&[]model.Order{
		{ID: "ord_1", Customer: "X", Status: "Shipped"},
		{ID: "ord_2", Customer: "Y", Status: "shipped"},
	}).Error)

	orders, err := repo.FindWithItemsAndProducts(context.Background(), model.NewOrderFilter("shipped", ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"ord_2"}, orderIDs(orders))
}

func TestOrderFilterScope_MySQLComparesStatusBinary(t *testing.T) {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "shop:shop@tcp(127.0.0.1:3306)/shop?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&model.Order{}).
			Joins("User").
			Scopes(OrderFilterScope(model.NewOrderFilter(string(model.OrderStatusPaid), "Émile"))).
			Find(&[]*model.Order{})
	})

	assert.Contains(t, sql, "CAST(`orders`.`status` AS BINARY) = CAST('ชำระแล้ว' AS BINARY)")
	assert.Contains(t, sql, "LOWER(`orders`.`customer`) LIKE LOWER('%Émile%') ESCAPE '!'")
	assert.Contains(t, sql, "LOWER(`User`.`email`) LIKE LOWER('%Émile%') ESCAPE '!'")
}
