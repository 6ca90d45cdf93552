package connector

// Provider names of the builtin connectors.
const (
	ProviderPostgres    = "postgresql"
	ProviderMySQL       = "mysql"
	ProviderSQLite      = "sqlite"
	ProviderSQLServer   = "sqlserver"
	ProviderCockroachDB = "cockroachdb"
	ProviderMongoDB     = "mongodb"
)

// NewPostgresConnector creates the PostgreSQL connector.
func NewPostgresConnector() *BaseConnector {
	return NewBaseConnector("Postgres", []string{ProviderPostgres, "postgres"},
		NewCapabilities(
			CapabilityUsingHashIndex,
			CapabilityNamedPrimaryKeys,
			CapabilityNamedForeignKeys,
			CapabilityCompoundIds,
		),
		[]ConstraintScope{ScopeGlobalPrimaryKeyKeyIndex, ScopeModelPrimaryKeyKeyIndexForeignKey},
		63,
	)
}

// NewMySQLConnector creates the MySQL connector.
func NewMySQLConnector() *BaseConnector {
	return NewBaseConnector("MySQL", []string{ProviderMySQL},
		NewCapabilities(
			CapabilityFullTextIndex,
			CapabilityIndexColumnLengthPrefixing,
			CapabilityMultipleFullTextAttributesPerModel,
			CapabilityNamedForeignKeys,
			CapabilityCompoundIds,
		),
		[]ConstraintScope{ScopeGlobalForeignKey, ScopeModelKeyIndex},
		64,
	)
}

// NewSQLiteConnector creates the SQLite connector.
func NewSQLiteConnector() *BaseConnector {
	return NewBaseConnector("SQLite", []string{ProviderSQLite},
		NewCapabilities(CapabilityCompoundIds),
		[]ConstraintScope{ScopeGlobalKeyIndex},
		10000,
	)
}

// NewSQLServerConnector creates the SQL Server connector.
func NewSQLServerConnector() *BaseConnector {
	return NewBaseConnector("SQL Server", []string{ProviderSQLServer},
		NewCapabilities(
			CapabilityClusteringSetting,
			CapabilityNamedPrimaryKeys,
			CapabilityNamedForeignKeys,
			CapabilityNamedDefaultValues,
			CapabilityCompoundIds,
		),
		[]ConstraintScope{ScopeGlobalPrimaryKeyForeignKeyDefault, ScopeModelPrimaryKeyKeyIndex},
		128,
	)
}

// NewCockroachConnector creates the CockroachDB connector.
func NewCockroachConnector() *BaseConnector {
	return NewBaseConnector("CockroachDB", []string{ProviderCockroachDB},
		NewCapabilities(
			CapabilityNamedPrimaryKeys,
			CapabilityNamedForeignKeys,
			CapabilityCompoundIds,
		),
		[]ConstraintScope{ScopeGlobalPrimaryKeyKeyIndex, ScopeModelPrimaryKeyKeyIndexForeignKey},
		63,
	)
}

// NewMongoDBConnector creates the MongoDB connector.
func NewMongoDBConnector() *BaseConnector {
	return NewBaseConnector("MongoDB", []string{ProviderMongoDB},
		NewCapabilities(
			CapabilityFullTextIndex,
			CapabilitySortOrderInFullTextIndex,
		),
		[]ConstraintScope{ScopeModelKeyIndex},
		127,
	)
}

// BuiltinRegistry returns a registry with every builtin connector.
func BuiltinRegistry() *Registry {
	return NewRegistry(
		NewPostgresConnector(),
		NewMySQLConnector(),
		NewSQLiteConnector(),
		NewSQLServerConnector(),
		NewCockroachConnector(),
		NewMongoDBConnector(),
	)
}
