package cache_test

import (
	"context"
	"time"

	"eduledger/internal/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RedisCache", func() {
	var (
		redisCache *cache.RedisCache
		ctx        context.Context
	)

	When("no address is configured", func() {
		BeforeEach(func() {
			redisCache = cache.NewRedisCache(zap.NewNop().Sugar(), "")
			ctx = context.Background()
		})

		It("should report disabled", func() {
			Expect(redisCache.Enabled()).To(BeFalse())
		})

		It("should miss on every lookup", func() {
			var dest map[string]string
			Expect(redisCache.Get(ctx, "analytics:key", &dest)).To(BeFalse())
			Expect(dest).To(BeNil())
		})

		It("should ignore stores", func() {
			redisCache.Set(ctx, "analytics:key", map[string]string{"a": "b"}, time.Minute)

			var dest map[string]string
			Expect(redisCache.Get(ctx, "analytics:key", &dest)).To(BeFalse())
		})

		It("should close without error", func() {
			Expect(redisCache.Close()).To(Succeed())
		})
	})
})
