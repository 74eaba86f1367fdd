package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"BlueRec/config"
	"BlueRec/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.Config{
		APIBaseURL:  baseURL,
		HTTPTimeout: 2 * time.Second,
	})
}

func TestLoginDecodesToken(t *testing.T) {
	var gotBody LoginParams
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"success":true,"code":200,"message":"成功","data":{"token":"abc.def.ghi"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	env, err := client.Login(context.Background(), LoginParams{Email: "u@example.com", Password: "secret66"})
	require.NoError(t, err)
	require.NoError(t, env.Err())
	require.NotNil(t, env.Data)
	assert.Equal(t, "abc.def.ghi", env.Data.Token)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "u@example.com", gotBody.Email)
}

func TestInfoSendsBearerTokenAndRequestID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`{"code":200,"message":"成功","data":{"userName":"GHOST","age":25}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	env, err := client.Info(context.Background(), "tok-123")
	require.NoError(t, err)
	require.NotNil(t, env.Data)
	assert.Equal(t, "GHOST", env.Data.UserName)
	assert.Equal(t, 25, env.Data.Age)
}

func TestNon2xxIsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Info(context.Background(), "stale")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

func TestBusinessFailureIsReturnedVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"code":201,"message":"用户名或密码错误"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	env, err := client.Login(context.Background(), LoginParams{Email: "u@example.com", Password: "wrong123"})
	// 传输层成功，业务失败留给调用方判断
	require.NoError(t, err)
	assert.Equal(t, 201, env.Code)
	assert.Equal(t, "用户名或密码错误", env.Message)

	var apiErr *APIError
	require.ErrorAs(t, env.Err(), &apiErr)
	assert.Equal(t, "用户名或密码错误", apiErr.Message)
	assert.Equal(t, "用户名或密码错误", Message(env.Err(), "登录失败"))
}

func TestTrainHonorsSuccessFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// code是200但success=false，仍然是业务失败
		w.Write([]byte(`{"success":false,"code":200,"message":"训练队列已满"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	env, err := client.Train(context.Background(), "tok", model.UserReview{})
	require.NoError(t, err)
	var apiErr *APIError
	require.ErrorAs(t, env.Err(), &apiErr)
}

func TestMalformedBodyIsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Info(context.Background(), "tok")
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestMismatchedDataShapeIsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":200,"message":"成功","data":[1,2,3]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Info(context.Background(), "tok")
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // 直接用关掉的地址制造连接失败

	client := newTestClient(server.URL)
	_, err := client.Info(context.Background(), "tok")
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestWeatherPassesLocationQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "101021500", r.URL.Query().Get("location"))
		// 天气接口不需要token
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"code":200,"message":"成功","data":{"now":{"temp":"23","humidity":"61","text":"多云"}}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	env, err := client.Weather(context.Background(), "101021500")
	require.NoError(t, err)
	require.NotNil(t, env.Data)
	assert.Equal(t, "23", env.Data.Now.Temp)
	assert.Equal(t, "多云", env.Data.Now.Text)
}

func TestRestaurantsByPredictDecodesList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"code":200,"message":"成功","data":{"recommendations":[
			{"restaurant_id":"B001","name":"苏小柳","address":"近铁城市广场","rating_biz":4.6,"cost":98,"type":"餐饮服务;中餐厅","tag":"小笼包,清淡"}
		]}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	env, err := client.RestaurantsByPredict(context.Background(), "tok")
	require.NoError(t, err)
	require.NotNil(t, env.Data)
	require.Len(t, env.Data.Recommendations, 1)

	r := env.Data.Recommendations[0]
	assert.Equal(t, "B001", r.RestaurantID)
	assert.Equal(t, []string{"餐饮服务", "中餐厅"}, r.Types())
	assert.True(t, strings.HasPrefix(r.Tag, "小笼包"))
}
