// Package languages 提供语言识别与行分类能力。
//
// Registry 把文件名/后缀映射到只读的 Profile；
// Classify 依据 Profile 的注释与字符串规则逐行判定 code/comment/blank。
package languages

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// resolveCacheSize 是文件名解析结果缓存的容量。
const resolveCacheSize = 4096

// LanguageDescriptor 用于对外展示语言及后缀信息。
type LanguageDescriptor struct {
	Name       string
	Extensions []string
	Filenames  []string
}

// Registry 管理语言配置注册与文件名/后缀映射。
// 初始化完成后只读，可被多个 worker 并发调用。
type Registry struct {
	profiles   []*Profile
	byExt      map[string]*Profile
	byFilename map[string]*Profile
	byName     map[string]*Profile
	cache      *lru.Cache[string, *Profile]
}

// NewRegistry 创建并注册所有内置语言配置。
func NewRegistry() *Registry {
	return newRegistry(builtinProfiles())
}

func newRegistry(profiles []*Profile) *Registry {
	registry := &Registry{
		profiles:   profiles,
		byExt:      make(map[string]*Profile),
		byFilename: make(map[string]*Profile),
		byName:     make(map[string]*Profile),
	}

	for _, profile := range profiles {
		profile.compile()
		registry.byName[profile.Name] = profile
		for _, ext := range profile.Extensions {
			registry.byExt[strings.ToLower(ext)] = profile
		}
		for _, name := range profile.Filenames {
			registry.byFilename[name] = profile
		}
	}

	// 容量为正数时 lru.New 不会返回错误。
	registry.cache, _ = lru.New[string, *Profile](resolveCacheSize)
	return registry
}

// Resolve 根据路径查找语言配置。
//
// 匹配顺序：
// 1. 文件名精确匹配（Makefile、Dockerfile 等），区分大小写
// 2. 后缀匹配，不区分大小写，最长后缀优先（.d.ts 先于 .ts）
func (r *Registry) Resolve(path string) (*Profile, bool) {
	base := filepath.Base(filepath.FromSlash(path))
	if cached, ok := r.cache.Get(base); ok {
		return cached, cached != nil
	}

	profile := r.lookup(base)
	r.cache.Add(base, profile)
	return profile, profile != nil
}

func (r *Registry) lookup(base string) *Profile {
	if profile, ok := r.byFilename[base]; ok {
		return profile
	}

	// 从左往右第一个点号给出最长的后缀，依次缩短。
	lower := strings.ToLower(base)
	for idx := 0; idx < len(lower); idx++ {
		if lower[idx] != '.' {
			continue
		}
		if profile, ok := r.byExt[lower[idx:]]; ok {
			return profile
		}
	}
	return nil
}

// ResolveShebang 对无法通过文件名识别的脚本，根据首行解释器声明查找配置。
func (r *Registry) ResolveShebang(content []byte) (*Profile, bool) {
	if len(content) < 2 || content[0] != '#' || content[1] != '!' {
		return nil, false
	}

	language, _ := enry.GetLanguageByShebang(content)
	if language == "" {
		return nil, false
	}

	profile, ok := r.byName[language]
	return profile, ok
}

// IsBinaryName 判断文件是否因后缀被直接视为二进制。
func (r *Registry) IsBinaryName(path string) bool {
	_, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Languages 返回已注册语言清单。
func (r *Registry) Languages() []LanguageDescriptor {
	result := make([]LanguageDescriptor, 0, len(r.profiles))
	for _, profile := range r.profiles {
		extensions := append([]string(nil), profile.Extensions...)
		sort.Strings(extensions)
		filenames := append([]string(nil), profile.Filenames...)
		sort.Strings(filenames)
		result = append(result, LanguageDescriptor{
			Name:       profile.Name,
			Extensions: extensions,
			Filenames:  filenames,
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// ExtensionsForLanguage 返回指定语言对应的全部后缀。
func (r *Registry) ExtensionsForLanguage(language string) []string {
	profile, ok := r.byName[language]
	if !ok {
		return nil
	}
	extensions := append([]string(nil), profile.Extensions...)
	sort.Strings(extensions)
	return extensions
}
