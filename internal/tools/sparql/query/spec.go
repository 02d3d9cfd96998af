package query

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// ExecuteSPARQLInput is the input contract for the execute-sparql tool.
type ExecuteSPARQLInput struct {
	Query string `json:"query" jsonschema:"description=The SPARQL query string to execute"`
}

const executeSPARQLDescription = `Executes SPARQL queries in a financial data triple store that contains comprehensive bank account, transaction data about the user and information about the purchased items. Detailed information on: bank accounts, parties, payments, payment cards, financial transactions, purchase receipts, products, product categories, and stores where purchases were made by the user during the period from July 1, 2024, to June 30, 2025.

# FUNCTIONAL PROPERTIES
- Each card can only have one scheme operator: pfm:cardSchemeOperator a owl:FunctionalProperty .
- Each card can only be linked to one account: pfm:linkedAccount a owl:FunctionalProperty .
- Each merchant can only have one category: pfm:merchantCategory a owl:FunctionalProperty .
- Each transaction can only have one status: pfm:status a owl:FunctionalProperty .
- Each transaction can only have one type: pfm:transactionType a owl:FunctionalProperty .
- Each transaction can only have one value date: pfm:valueDate a owl:FunctionalProperty .
- Each card can only have one number: pfm:cardNumber a owl:FunctionalProperty .
- Each card can only have one status: pfm:cardStatus a owl:FunctionalProperty .
- Each card can only have one type: pfm:cardType a owl:FunctionalProperty .
- Each card can only have one expiry date: pfm:expiryDate a owl:FunctionalProperty .
- Each product category can only have one CO2 factor: pfm:co2Factor a owl:FunctionalProperty .
- Each product category can only have one tax class: pfm:taxClass a owl:FunctionalProperty .

What follows in yaml format is a collection of common questions and the corresponding SPARQL-query. Use the examples to answer the users questions.

# Instructions
- Use the pfm: prefix for schema properties and the ex: prefix for data instances.
- Do not escape new lines (\n) within SPARQL queries sent to the tool.

` + "```yaml" + `
---
- question: Show my profile
  sparql: |
    PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
    PREFIX pfm: <https://static.rwpz.net/spendcast/schema#>
    select ?name ?birthDate ?phoneNumber
    WHERE {
    ?person a pfm:Person ;
    rdfs:label ?name .
    OPTIONAL { ?person pfm:birthDate ?birthDate } .
    OPTIONAL { ?person pfm:hasTelephoneNumber ?phoneNumber } .
    }
- question: Show all my accounts with name, purpose, account number, currency and initial balance
  sparql: |
    PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
    PREFIX pfm: <https://static.rwpz.net/spendcast/schema#>
    SELECT ?label ?accountPurpose ?initialBalance ?accNum ?accountCurrency
    WHERE {
    ?account a pfm:Account ;
        pfm:hasAccountPurpose ?accountPurpose ;
        rdfs:label ?label .
        OPTIONAL{ ?account pfm:hasInitialBalance ?initialBalance} .
        OPTIONAL{ ?account pfm:accountNumber ?accNum} .
        OPTIONAL{ ?account pfm:hasCurrency ?accountCurrency}
    }
- question: Show me the current balance of the account number "1234567890" between 2024-07-01 and 2025-07-01
  sparql: |
    PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
    PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
    PREFIX pfm: <https://static.rwpz.net/spendcast/schema#>
    SELECT (SUM(IF(?transactionType = 'income', ?amount, -?amount)) as ?balance) where {
    ?account pfm:accountNumber "1234567890" .
    ?participantRole pfm:isPlayedBy ?account .
    ?transaction pfm:hasParticipant ?participantRole .

    ?transaction a pfm:FinancialTransaction ;
    pfm:hasMonetaryAmount ?monetaryAmount ;
    pfm:hasTransactionDate ?transactionDate ;
    pfm:transactionType ?transactionType ;
    pfm:status ?transactionStatus .

    ?monetaryAmount pfm:hasCurrency ?currency ;
    pfm:hasAmount ?amount .

    FILTER(strstarts(?transactionStatus, "settled"))
    FILTER (?transactionDate >= "2024-07-01"^^xsd:date)
    FILTER (?transactionDate < "2025-07-01"^^xsd:date)
    }
- question: Show me all my payment cards
  sparql: |
    PREFIX pfm: <https://static.rwpz.net/spendcast/schema#>
    PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
    SELECT ?cardNumber ?cardType ?expiryDate ?linkedAccountNumber ?cardIssuer ?cardSchemeOperator WHERE {
        ?card a pfm:PaymentCard ;
        pfm:cardNumber ?cardNumber ;
        pfm:cardType ?cardType ;
        pfm:expiryDate ?expiryDate ;
        pfm:hasCardIssuer/pfm:isPlayedBy/rdfs:label ?cardIssuer ;
        pfm:cardSchemeOperator/pfm:isPlayedBy/rdfs:label ?cardSchemeOperator ;
        pfm:linkedAccount/pfm:accountNumber ?linkedAccountNumber .
    }
- question: Show me all merchants that received a payment between 2024-10-01 and 2024-10-31
  sparql: |
    PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
    PREFIX pfm: <https://static.rwpz.net/spendcast/schema#>
    SELECT DISTINCT ?payee WHERE {
        ?transaction a pfm:FinancialTransaction ;
        pfm:hasTransactionDate ?transactionDate ;
        pfm:transactionType ?transactionType ;
        pfm:hasParticipant [
            a pfm:Payee ;
            pfm:isPlayedBy/rdfs:label ?payee
        ] .

        FILTER(strstarts(?transactionType, "expense"))
        FILTER (?transactionDate >= "2024-10-01"^^xsd:date)
        FILTER (?transactionDate < "2024-10-31"^^xsd:date)
    }
- question: Show me the line items of the receipt with the id="Receipt 20250627_184626_0033091_251_260"
  sparql: |
    PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
    PREFIX pfm: <https://static.rwpz.net/spendcast/schema#>
    SELECT ?description ?quantity ?unitPrice ?lineSubtotal ?productUrls
    WHERE {
        ?receipt a pfm:Receipt ;
                rdfs:label "Receipt 20250627_184626_0033091_251_260";
    pfm:hasLineItem	?lineItem .
    ?lineItem pfm:itemDescription ?description ;
        pfm:quantity ?quantity ;
        pfm:unitPrice ?unitPrice ;
            pfm:lineSubtotal ?lineSubtotal ;
        pfm:hasProduct [a pfm:Product ;
        pfm:productUrls ?productUrls ;
            pfm:category [a pfm:ProductCategory ; rdfs:label ?category ]] .
    }
` + "```"

// ExecuteSPARQLSpec returns the tool specification for execute-sparql.
func ExecuteSPARQLSpec() mcp.Tool {
	return mcp.NewTool("execute-sparql",
		mcp.WithDescription(executeSPARQLDescription),
		mcp.WithInputSchema[ExecuteSPARQLInput](),
		mcp.WithTitleAnnotation("Execute SPARQL"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
