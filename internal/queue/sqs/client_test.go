package sqs

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"

	"github.com/heyemlee/quicklink-app/internal/domain"
)

func TestMessageAttributes(t *testing.T) {
	e := domain.NewEvent("owner-1", domain.EventTypeSaveContact, "", "", "")

	attrs := messageAttributes(e)

	assert.Len(t, attrs, 2)
	assert.Equal(t, "save_contact", aws.ToString(attrs["EventType"].StringValue))
	assert.Equal(t, "owner-1", aws.ToString(attrs["OwnerID"].StringValue))
	assert.Equal(t, "String", aws.ToString(attrs["OwnerID"].DataType))
}
