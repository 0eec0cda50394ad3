package graph

// Schema is the GraphQL schema served at /graphql. Token-returning
// mutations yield the signed credential as an opaque string.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		users: [User!]!
		products: [Product!]!
		orders: [Order!]!
		me: User
	}

	type Mutation {
		signUp(name: String!, email: String!, password: String!): String!
		login(email: String!, password: String!): String!
		createProduct(name: String!, description: String!, price: Float!): Product!
		createOrder(userId: ID!, productId: ID!, quantity: Int!): Order!
	}

	type User {
		id: ID!
		name: String!
		email: String!
		orders: [Order!]!
	}

	type Product {
		id: ID!
		name: String!
		description: String!
		price: Float!
		orders: [Order!]!
	}

	type Order {
		id: ID!
		user: User!
		product: Product!
		quantity: Int!
	}
`
