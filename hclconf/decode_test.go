package hclconf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBlocksAndAttributes(t *testing.T) {
	src := `
resource "aws_vpc" "main" {
  cidr_block           = "10.0.0.0/16"
  enable_dns_hostnames = true
  instance_count       = 3

  tags = {
    Name = "main-vpc"
  }
}
`
	f, err := Decode("main.tf", []byte(src))
	require.NoError(t, err)
	require.Len(t, f.Blocks, 1)
	require.Empty(t, f.Attributes)

	b := f.Blocks[0]
	assert.Equal(t, "resource", b.Type)
	assert.Equal(t, []string{"aws_vpc", "main"}, b.Labels)

	cidr, ok := b.Body.Attr("cidr_block")
	require.True(t, ok)
	assert.Equal(t, KindString, cidr.Kind())
	assert.Equal(t, "10.0.0.0/16", cidr.AsString())

	dns, _ := b.Body.Attr("enable_dns_hostnames")
	assert.True(t, dns.AsBool())

	count, _ := b.Body.Attr("instance_count")
	assert.Equal(t, float64(3), count.AsNumber())

	tags, ok := b.Body.Attr("tags")
	require.True(t, ok)
	assert.Equal(t, KindMap, tags.Kind())
	name, _ := tags.Attr("Name")
	assert.Equal(t, "main-vpc", name.AsString())
}

func TestDecodeKeepsReferencesAsRawText(t *testing.T) {
	src := `
resource "aws_subnet" "public" {
  vpc_id     = aws_vpc.main.id
  cidr_block = "10.0.1.0/24"
}
`
	f, err := Decode("subnet.tf", []byte(src))
	require.NoError(t, err)
	require.Len(t, f.Blocks, 1)

	vpcID, ok := f.Blocks[0].Body.Attr("vpc_id")
	require.True(t, ok)
	assert.Equal(t, KindString, vpcID.Kind())
	assert.Equal(t, "aws_vpc.main.id", vpcID.AsString())
}

func TestDecodeTopLevelAttributes(t *testing.T) {
	src := `
region         = "us-east-1"
instance_count = 2
`
	f, err := Decode("terraform.tfvars", []byte(src))
	require.NoError(t, err)
	assert.Empty(t, f.Blocks)
	require.Len(t, f.Attributes, 2)
	assert.Equal(t, "us-east-1", f.Attributes["region"].AsString())
	assert.Equal(t, float64(2), f.Attributes["instance_count"].AsNumber())
}

func TestDecodeNestedBlocks(t *testing.T) {
	src := `
variable "region" {
  type = string

  validation {
    condition     = length(var.region) > 0
    error_message = "Region must not be empty."
  }
}
`
	f, err := Decode("variables.tf", []byte(src))
	require.NoError(t, err)
	require.Len(t, f.Blocks, 1)

	body := f.Blocks[0].Body
	assert.True(t, body.HasAttr("validation"))

	// Type keywords cannot be evaluated statically and stay as raw text.
	typ, _ := body.Attr("type")
	assert.Equal(t, "string", typ.AsString())
}

func TestDecodeRepeatedNestedBlocksFoldToList(t *testing.T) {
	src := `
resource "aws_security_group" "web" {
  ingress {
    from_port = 80
  }
  ingress {
    from_port = 443
  }
}
`
	f, err := Decode("sg.tf", []byte(src))
	require.NoError(t, err)

	ingress, ok := f.Blocks[0].Body.Attr("ingress")
	require.True(t, ok)
	assert.Equal(t, KindList, ingress.Kind())
	assert.Equal(t, 2, ingress.Len())
}

func TestDecodeMalformedSource(t *testing.T) {
	_, err := Decode("broken.tf", []byte(`resource "aws_vpc" {{{`))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "broken.tf", decodeErr.Filename)
	assert.NotEmpty(t, decodeErr.Error())
}

func TestValueCanonicalText(t *testing.T) {
	v := MapVal(map[string]Value{
		"b": StringVal("two"),
		"a": NumberVal(1),
	})
	// Canonical form sorts map keys, so the rendering is deterministic.
	assert.Equal(t, `{"a":1,"b":"two"}`, v.String())
}
