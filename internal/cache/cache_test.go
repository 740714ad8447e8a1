package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/travel-planner/internal/cache"
	"github.com/neexbeast/travel-planner/internal/catalog"
)

func newTestCache(t *testing.T, ttl time.Duration) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewCache(client, ttl), mr
}

func sampleWeather() catalog.WeatherInfo {
	return catalog.WeatherInfo{
		Current: catalog.WeatherNow{Temperature: 22.5, Condition: "Clear", Humidity: "60%"},
	}
}

func TestCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, cache.Key("weather", "Paris"), sampleWeather()))

	var got catalog.WeatherInfo
	hit, err := c.Get(ctx, cache.Key("weather", "Paris"), &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, 22.5, got.Current.Temperature)
	assert.Equal(t, "Clear", got.Current.Condition)
}

func TestCache_Get_Miss(t *testing.T) {
	c, _ := newTestCache(t, 0)

	var got catalog.WeatherInfo
	hit, err := c.Get(context.Background(), cache.Key("weather", "nowhere"), &got)
	require.NoError(t, err)
	assert.False(t, hit, "cache miss should return false, nil")
}

func TestCache_KeyIsNormalised(t *testing.T) {
	assert.Equal(t, "travel:weather:paris", cache.Key("weather", "  PARIS "))

	c, _ := newTestCache(t, 0)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, cache.Key("weather", "PARIS"), sampleWeather()))

	var got catalog.WeatherInfo
	hit, err := c.Get(ctx, cache.Key("weather", "paris"), &got)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestCache_Delete(t *testing.T) {
	c, _ := newTestCache(t, 0)
	ctx := context.Background()
	key := cache.Key("weather", "Paris")

	require.NoError(t, c.Set(ctx, key, sampleWeather()))
	require.NoError(t, c.Delete(ctx, key))

	var got catalog.WeatherInfo
	hit, err := c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit, "entry should be gone after delete")
}

func TestCache_Delete_NonExistent(t *testing.T) {
	c, _ := newTestCache(t, 0)
	require.NoError(t, c.Delete(context.Background(), cache.Key("ghost")))
}

func TestCache_Set_Nil(t *testing.T) {
	c, mr := newTestCache(t, 0)
	require.NoError(t, c.Set(context.Background(), cache.Key("nil"), nil))
	assert.False(t, mr.Exists(cache.Key("nil")))
}

func TestCache_Get_CorruptValue(t *testing.T) {
	c, mr := newTestCache(t, 0)
	key := cache.Key("weather", "Paris")
	require.NoError(t, mr.Set(key, "not-json"))

	var got catalog.WeatherInfo
	_, err := c.Get(context.Background(), key, &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshaling")
}

func TestCache_DefaultTTL(t *testing.T) {
	c, mr := newTestCache(t, 0)
	ctx := context.Background()
	key := cache.Key("weather", "Paris")

	require.NoError(t, c.Set(ctx, key, sampleWeather()))
	mr.FastForward(2 * time.Hour)

	var got catalog.WeatherInfo
	hit, err := c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit, "entry should be expired after TTL")
}

func TestCache_CustomTTL(t *testing.T) {
	c, mr := newTestCache(t, 10*time.Minute)
	ctx := context.Background()
	key := cache.Key("currency", "usd", "eur")

	require.NoError(t, c.Set(ctx, key, map[string]float64{"rate": 0.85}))
	assert.Equal(t, 10*time.Minute, mr.TTL(key))

	mr.FastForward(11 * time.Minute)
	var got map[string]float64
	hit, err := c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := cache.Connect(context.Background(), "not-a-url")
	require.Error(t, err)
}

func TestConnect_UnreachableServer(t *testing.T) {
	_, err := cache.Connect(context.Background(), "redis://localhost:19999")
	require.Error(t, err)
}

func TestConnect_Miniredis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := cache.Connect(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	_ = client.Close()
}
