/*
schema contains the types shared between the weather tools, the language
model provider, the HTTP handlers and the HTTP client.
*/
package schema
