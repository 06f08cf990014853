// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemhttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/itemdemo"
	"gopkg.in/yaml.v3"
)

type EncodeSuite struct {
	suite.Suite
}

func (suite *EncodeSuite) TestNegotiate() {
	testData := []struct {
		accept   []string
		expected string
	}{
		{
			expected: ContentTypeJSON,
		},
		{
			accept:   []string{"*/*"},
			expected: ContentTypeJSON,
		},
		{
			accept:   []string{"application/json"},
			expected: ContentTypeJSON,
		},
		{
			accept:   []string{"application/yaml"},
			expected: ContentTypeYAML,
		},
		{
			accept:   []string{"text/html, application/x-yaml;q=0.9"},
			expected: ContentTypeYAML,
		},
		{
			accept:   []string{"application/json", "text/yaml"},
			expected: ContentTypeYAML,
		},
		{
			accept:   []string{"text/x-yaml"},
			expected: ContentTypeYAML,
		},
		{
			accept:   []string{"not a ; = media type"},
			expected: ContentTypeJSON,
		},
	}

	for i, record := range testData {
		suite.Run(strconv.Itoa(i), func() {
			request := httptest.NewRequest("GET", "/", nil)
			for _, v := range record.accept {
				request.Header.Add("Accept", v)
			}

			suite.Equal(record.expected, Negotiate(request))
		})
	}
}

func (suite *EncodeSuite) TestWriteResponseJSON() {
	var (
		response = httptest.NewRecorder()
		request  = httptest.NewRequest("GET", "/", nil)
		expected = itemdemo.Item{Name: "test", Price: 12}
	)

	suite.Require().NoError(WriteResponse(response, request, http.StatusCreated, expected))
	suite.Equal(http.StatusCreated, response.Code)
	suite.Equal(ContentTypeJSON, response.Header().Get("Content-Type"))
	suite.Equal(strconv.Itoa(response.Body.Len()), response.Header().Get("Content-Length"))

	var actual itemdemo.Item
	suite.Require().NoError(json.Unmarshal(response.Body.Bytes(), &actual))
	suite.Equal(expected, actual)
}

func (suite *EncodeSuite) TestWriteResponseYAML() {
	var (
		response = httptest.NewRecorder()
		request  = httptest.NewRequest("GET", "/", nil)
		expected = itemdemo.Item{Name: "test", Price: 12}
	)

	request.Header.Set("Accept", "application/yaml")
	suite.Require().NoError(WriteResponse(response, request, http.StatusOK, expected))
	suite.Equal(http.StatusOK, response.Code)
	suite.Equal(ContentTypeYAML, response.Header().Get("Content-Type"))

	var actual itemdemo.Item
	suite.Require().NoError(yaml.Unmarshal(response.Body.Bytes(), &actual))
	suite.Equal(expected, actual)
}

func (suite *EncodeSuite) TestWriteResponseMarshalError() {
	var (
		response = httptest.NewRecorder()
		request  = httptest.NewRequest("GET", "/", nil)
	)

	err := WriteResponse(response, request, http.StatusOK, make(chan int))
	suite.Error(err)
	suite.Equal(http.StatusInternalServerError, response.Code)
	suite.Equal(ContentTypeJSON, response.Header().Get("Content-Type"))

	var er ErrorResponse
	suite.Require().NoError(json.Unmarshal(response.Body.Bytes(), &er))
	suite.Equal(CodeInternal, er.Code)
}

func (suite *EncodeSuite) TestWriteText() {
	response := httptest.NewRecorder()
	suite.Require().NoError(WriteText(response, http.StatusAccepted, "hello"))
	suite.Equal(http.StatusAccepted, response.Code)
	suite.Equal(ContentTypeText, response.Header().Get("Content-Type"))
	suite.Equal("5", response.Header().Get("Content-Length"))
	suite.Equal("hello", response.Body.String())
}

func (suite *EncodeSuite) TestStatusCodeFor() {
	suite.Equal(http.StatusNotFound, StatusCodeFor(&itemdemo.NotFoundError{Key: "1"}))
	suite.Equal(
		http.StatusNotFound,
		StatusCodeFor(fmt.Errorf("wrapped: %w", &itemdemo.NotFoundError{Key: "1"})),
	)

	suite.Equal(http.StatusInternalServerError, StatusCodeFor(errors.New("plain")))
}

func (suite *EncodeSuite) TestErrorCodeFor() {
	suite.Equal("NOT_FOUND", ErrorCodeFor(&itemdemo.NotFoundError{Key: "1"}))
	suite.Equal(CodeInternal, ErrorCodeFor(errors.New("plain")))
}

func (suite *EncodeSuite) TestWriteError() {
	suite.Run("NotFound", func() {
		var (
			response = httptest.NewRecorder()
			request  = httptest.NewRequest("GET", "/", nil)
		)

		request = request.WithContext(context.WithValue(request.Context(), requestIDKey{}, "abc"))
		suite.NoError(WriteError(response, request, &itemdemo.NotFoundError{Key: "1"}))
		suite.Equal(http.StatusNotFound, response.Code)
		suite.Equal(ContentTypeJSON, response.Header().Get("Content-Type"))

		var actual ErrorResponse
		suite.Require().NoError(json.Unmarshal(response.Body.Bytes(), &actual))
		suite.Equal(
			ErrorResponse{
				Error:     `no item with key "1"`,
				Code:      "NOT_FOUND",
				RequestID: "abc",
			},
			actual,
		)
	})

	suite.Run("Internal", func() {
		var (
			response = httptest.NewRecorder()
			request  = httptest.NewRequest("GET", "/", nil)
		)

		request.Header.Set("Accept", "application/yaml")
		suite.NoError(WriteError(response, request, errors.New("plain")))
		suite.Equal(http.StatusInternalServerError, response.Code)
		suite.Equal(ContentTypeJSON, response.Header().Get("Content-Type"))
		suite.JSONEq(`{"error": "plain", "code": "INTERNAL_ERROR"}`, response.Body.String())
	})
}

// failingWriter accepts headers but fails every body write
type failingWriter struct {
	*httptest.ResponseRecorder
	err error
}

func (fw failingWriter) Write([]byte) (int, error) {
	return 0, fw.err
}

func (suite *EncodeSuite) TestWriteErrorWriteFailure() {
	var (
		expected = errors.New("connection reset")
		response = failingWriter{ResponseRecorder: httptest.NewRecorder(), err: expected}
		request  = httptest.NewRequest("GET", "/", nil)
	)

	suite.ErrorIs(WriteError(response, request, errors.New("plain")), expected)
	suite.Equal(http.StatusInternalServerError, response.Code)
}

func TestEncode(t *testing.T) {
	suite.Run(t, new(EncodeSuite))
}
