package graphql_test

// Documentos de operación que usan los clientes; schema_test.go los valida contra el SDL.
var operations = map[string]string{
	"CreateItem": `mutation CreateItem($input: CreateItemInput!) {
  createItem(createItemInput: $input) { id name quantity user { id email } }
}`,
	"Item": `query Item($id: ID!) {
  item(id: $id) { id name quantity }
}`,
	"Items": `query Items {
  items { id name quantity }
}`,
	"UpdateItem": `mutation UpdateItem($input: UpdateItemInput!) {
  updateItem(updateItemInput: $input) { id name quantity }
}`,
	"RemoveItem": `mutation RemoveItem($id: ID!) {
  removeItem(id: $id) { id name quantity }
}`,
	"Signup": `mutation Signup($input: SignupInput!) {
  signup(signupInput: $input) { token user { id email fullName roles isActive } }
}`,
	"Login": `mutation Login($input: LoginInput!) {
  login(loginInput: $input) { token user { id email } }
}`,
	"Revalidate": `query Revalidate {
  revalidate { token user { id email } }
}`,
	"Users": `query Users($roles: [ValidRoles!]) {
  users(roles: $roles) { id email roles isActive lastUpdateBy { id email } }
}`,
	"User": `query User($id: ID!) {
  user(id: $id) { id email isActive lastUpdateBy { id email } }
}`,
	"UpdateUser": `mutation UpdateUser($input: UpdateUserInput!) {
  updateUser(updateUserInput: $input) { id fullName roles isActive lastUpdateBy { id } }
}`,
	"BlockUser": `mutation BlockUser($id: ID!) {
  blockUser(id: $id) { id isActive lastUpdateBy { id email } }
}`,
}
