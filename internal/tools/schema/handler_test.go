package schema_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spendcast/graphdb-mcp-finance/internal/graphdb"
	graphdb_mocks "github.com/spendcast/graphdb-mcp-finance/internal/graphdb/mocks"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const classResults = `{
  "head": {"vars": ["class", "count"]},
  "results": {"bindings": [
    {"class": {"type": "uri", "value": "https://static.rwpz.net/spendcast/schema#FinancialTransaction"},
     "count": {"type": "literal", "value": "1204"}},
    {"class": {"type": "uri", "value": "https://static.rwpz.net/spendcast/schema#Account"},
     "count": {"type": "literal", "value": "4"}}
  ]}
}`

const propertyResults = `{
  "head": {"vars": ["property", "count"]},
  "results": {"bindings": [
    {"property": {"type": "uri", "value": "https://static.rwpz.net/spendcast/schema#hasMonetaryAmount"},
     "count": {"type": "literal", "value": "1204"}}
  ]}
}`

const emptyResults = `{"head": {"vars": ["class", "count"]}, "results": {"bindings": []}}`

func TestGetSchemaHandler(t *testing.T) {
	t.Run("renders classes and properties as markdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		db := graphdb_mocks.NewMockService(ctrl)
		db.EXPECT().Endpoint().Return("http://localhost:7200/repositories/spendcast").AnyTimes()
		gomock.InOrder(
			db.EXPECT().ExecuteQuery(gomock.Any(), gomock.Any()).
				Return(graphdb.NewDataResult(json.RawMessage(classResults))),
			db.EXPECT().ExecuteQuery(gomock.Any(), gomock.Any()).
				Return(graphdb.NewDataResult(json.RawMessage(propertyResults))),
		)

		handler := schema.GetSchemaHandler(&tools.ToolDependencies{GraphDB: db})
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		require.NoError(t, err)
		require.NotNil(t, result)
		require.False(t, result.IsError)

		text := result.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "FinancialTransaction")
		assert.Contains(t, text, "1204 instances")
		assert.Contains(t, text, "hasMonetaryAmount")
		assert.Contains(t, text, "## 1. Classes in use")
		assert.Contains(t, text, "## 2. Properties in use")
	})

	t.Run("empty store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		db := graphdb_mocks.NewMockService(ctrl)
		db.EXPECT().Endpoint().Return("http://localhost:7200/repositories/spendcast").AnyTimes()
		db.EXPECT().ExecuteQuery(gomock.Any(), gomock.Any()).
			Return(graphdb.NewDataResult(json.RawMessage(emptyResults)))

		handler := schema.GetSchemaHandler(&tools.ToolDependencies{GraphDB: db})
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		require.NoError(t, err)
		require.False(t, result.IsError)

		text := result.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "no schema information")
	})

	t.Run("executor error becomes tool error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		db := graphdb_mocks.NewMockService(ctrl)
		db.EXPECT().Endpoint().Return("http://localhost:7200/repositories/spendcast").AnyTimes()
		db.EXPECT().ExecuteQuery(gomock.Any(), gomock.Any()).
			Return(graphdb.NewErrorResult("An error occurred while connecting to GraphDB: connection refused"))

		handler := schema.GetSchemaHandler(&tools.ToolDependencies{GraphDB: db})
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})

	t.Run("nil graphdb service", func(t *testing.T) {
		handler := schema.GetSchemaHandler(&tools.ToolDependencies{})
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})
}
