// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fiber-ent-market-pg/ent/predicate"
	"fiber-ent-market-pg/ent/seller"
	"fiber-ent-market-pg/ent/sellersubscription"
	"fiber-ent-market-pg/ent/subscriptiontier"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SellerSubscriptionQuery is the builder for querying SellerSubscription entities.
type SellerSubscriptionQuery struct {
	config
	ctx        *QueryContext
	order      []sellersubscription.OrderOption
	inters     []Interceptor
	predicates []predicate.SellerSubscription
	withSeller *SellerQuery
	withTier   *SubscriptionTierQuery
	withFKs    bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SellerSubscriptionQuery builder.
func (_q *SellerSubscriptionQuery) Where(ps ...predicate.SellerSubscription) *SellerSubscriptionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SellerSubscriptionQuery) Limit(limit int) *SellerSubscriptionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SellerSubscriptionQuery) Offset(offset int) *SellerSubscriptionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SellerSubscriptionQuery) Unique(unique bool) *SellerSubscriptionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SellerSubscriptionQuery) Order(o ...sellersubscription.OrderOption) *SellerSubscriptionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySeller chains the current query on the "seller" edge.
func (_q *SellerSubscriptionQuery) QuerySeller() *SellerQuery {
	query := (&SellerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sellersubscription.Table, sellersubscription.FieldID, selector),
			sqlgraph.To(seller.Table, seller.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sellersubscription.SellerTable, sellersubscription.SellerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTier chains the current query on the "tier" edge.
func (_q *SellerSubscriptionQuery) QueryTier() *SubscriptionTierQuery {
	query := (&SubscriptionTierClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sellersubscription.Table, sellersubscription.FieldID, selector),
			sqlgraph.To(subscriptiontier.Table, subscriptiontier.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sellersubscription.TierTable, sellersubscription.TierColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SellerSubscription entity from the query.
// Returns a *NotFoundError when no SellerSubscription was found.
func (_q *SellerSubscriptionQuery) First(ctx context.Context) (*SellerSubscription, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{sellersubscription.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SellerSubscriptionQuery) FirstX(ctx context.Context) *SellerSubscription {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SellerSubscription ID from the query.
// Returns a *NotFoundError when no SellerSubscription ID was found.
func (_q *SellerSubscriptionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{sellersubscription.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SellerSubscriptionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SellerSubscription entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SellerSubscription entity is found.
// Returns a *NotFoundError when no SellerSubscription entities are found.
func (_q *SellerSubscriptionQuery) Only(ctx context.Context) (*SellerSubscription, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{sellersubscription.Label}
	default:
		return nil, &NotSingularError{sellersubscription.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SellerSubscriptionQuery) OnlyX(ctx context.Context) *SellerSubscription {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SellerSubscription ID in the query.
// Returns a *NotSingularError when more than one SellerSubscription ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SellerSubscriptionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{sellersubscription.Label}
	default:
		err = &NotSingularError{sellersubscription.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SellerSubscriptionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SellerSubscriptions.
func (_q *SellerSubscriptionQuery) All(ctx context.Context) ([]*SellerSubscription, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SellerSubscription, *SellerSubscriptionQuery]()
	return withInterceptors[[]*SellerSubscription](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SellerSubscriptionQuery) AllX(ctx context.Context) []*SellerSubscription {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SellerSubscription IDs.
func (_q *SellerSubscriptionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(sellersubscription.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SellerSubscriptionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SellerSubscriptionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SellerSubscriptionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SellerSubscriptionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SellerSubscriptionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *SellerSubscriptionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SellerSubscriptionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SellerSubscriptionQuery) Clone() *SellerSubscriptionQuery {
	if _q == nil {
		return nil
	}
	return &SellerSubscriptionQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]sellersubscription.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.SellerSubscription{}, _q.predicates...),
		withSeller: _q.withSeller.Clone(),
		withTier:   _q.withTier.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSeller tells the query-builder to eager-load the nodes that are connected to
// the "seller" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SellerSubscriptionQuery) WithSeller(opts ...func(*SellerQuery)) *SellerSubscriptionQuery {
	query := (&SellerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSeller = query
	return _q
}

// WithTier tells the query-builder to eager-load the nodes that are connected to
// the "tier" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SellerSubscriptionQuery) WithTier(opts ...func(*SubscriptionTierQuery)) *SellerSubscriptionQuery {
	query := (&SubscriptionTierClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTier = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		StartsAt time.Time `json:"starts_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SellerSubscription.Query().
//		GroupBy(sellersubscription.FieldStartsAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SellerSubscriptionQuery) GroupBy(field string, fields ...string) *SellerSubscriptionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SellerSubscriptionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = sellersubscription.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		StartsAt time.Time `json:"starts_at,omitempty"`
//	}
//
//	client.SellerSubscription.Query().
//		Select(sellersubscription.FieldStartsAt).
//		Scan(ctx, &v)
func (_q *SellerSubscriptionQuery) Select(fields ...string) *SellerSubscriptionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SellerSubscriptionSelect{SellerSubscriptionQuery: _q}
	sbuild.label = sellersubscription.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SellerSubscriptionSelect configured with the given aggregations.
func (_q *SellerSubscriptionQuery) Aggregate(fns ...AggregateFunc) *SellerSubscriptionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SellerSubscriptionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !sellersubscription.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *SellerSubscriptionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SellerSubscription, error) {
	var (
		nodes       = []*SellerSubscription{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withSeller != nil,
			_q.withTier != nil,
		}
	)
	if _q.withSeller != nil || _q.withTier != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, sellersubscription.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SellerSubscription).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SellerSubscription{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSeller; query != nil {
		if err := _q.loadSeller(ctx, query, nodes, nil,
			func(n *SellerSubscription, e *Seller) { n.Edges.Seller = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTier; query != nil {
		if err := _q.loadTier(ctx, query, nodes, nil,
			func(n *SellerSubscription, e *SubscriptionTier) { n.Edges.Tier = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SellerSubscriptionQuery) loadSeller(ctx context.Context, query *SellerQuery, nodes []*SellerSubscription, init func(*SellerSubscription), assign func(*SellerSubscription, *Seller)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*SellerSubscription)
	for i := range nodes {
		if nodes[i].seller_subscriptions == nil {
			continue
		}
		fk := *nodes[i].seller_subscriptions
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(seller.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "seller_subscriptions" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SellerSubscriptionQuery) loadTier(ctx context.Context, query *SubscriptionTierQuery, nodes []*SellerSubscription, init func(*SellerSubscription), assign func(*SellerSubscription, *SubscriptionTier)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*SellerSubscription)
	for i := range nodes {
		if nodes[i].subscription_tier_subscriptions == nil {
			continue
		}
		fk := *nodes[i].subscription_tier_subscriptions
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(subscriptiontier.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "subscription_tier_subscriptions" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *SellerSubscriptionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SellerSubscriptionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(sellersubscription.Table, sellersubscription.Columns, sqlgraph.NewFieldSpec(sellersubscription.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sellersubscription.FieldID)
		for i := range fields {
			if fields[i] != sellersubscription.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *SellerSubscriptionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(sellersubscription.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = sellersubscription.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SellerSubscriptionGroupBy is the group-by builder for SellerSubscription entities.
type SellerSubscriptionGroupBy struct {
	selector
	build *SellerSubscriptionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SellerSubscriptionGroupBy) Aggregate(fns ...AggregateFunc) *SellerSubscriptionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SellerSubscriptionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SellerSubscriptionQuery, *SellerSubscriptionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SellerSubscriptionGroupBy) sqlScan(ctx context.Context, root *SellerSubscriptionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SellerSubscriptionSelect is the builder for selecting fields of SellerSubscription entities.
type SellerSubscriptionSelect struct {
	*SellerSubscriptionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SellerSubscriptionSelect) Aggregate(fns ...AggregateFunc) *SellerSubscriptionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SellerSubscriptionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SellerSubscriptionQuery, *SellerSubscriptionSelect](ctx, _s.SellerSubscriptionQuery, _s, _s.inters, v)
}

func (_s *SellerSubscriptionSelect) sqlScan(ctx context.Context, root *SellerSubscriptionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
