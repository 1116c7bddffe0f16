// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dynamo implements store.Store on DynamoDB via aws-sdk-go-v2.

Semantics map directly onto DynamoDB primitives:

  - PutIfAbsent → PutItem with attribute_not_exists(pk), so a duplicate vote
    loses the conditional write server-side
  - Update → UpdateItem with attribute_exists(pk); the condition turns the
    engine's create-on-update default into store.ErrNotFound
  - Scan → paginated Scan following LastEvaluatedKey

Documents are converted between JSON and DynamoDB attribute values with the
attributevalue package. Expression attribute names are used throughout since
"status" is a DynamoDB reserved word.
*/
package dynamo
