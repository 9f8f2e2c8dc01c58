package recipe

// sampleRecipes is the bundled fallback data, in the upstream schema. It is
// served whenever the live API is unavailable or unconfigured, and doubles
// as the local corpus for ingredient matching. Unlike live records, sample
// records carry instructions so the detail view has steps to render.
var sampleRecipes = []Rakuten{
	{
		RecipeID:          "1180006594",
		CategoryID:        "14-121",
		RecipeTitle:       "簡単ふわふわオムライス",
		RecipeURL:         "https://recipe.rakuten.co.jp/recipe/1180006594/",
		FoodImageURL:      "https://image.space.rakuten.co.jp/d/strg/ctrl/3/example1.jpg",
		RecipeDescription: "卵がふわふわで美味しいオムライスです。初心者でも簡単に作れます。",
		RecipeIndication:  "約30分",
		RecipeCost:        "300円前後",
		RecipeMaterial: MaterialList{
			"卵 3個",
			"ご飯 200g",
			"玉ねぎ 1/2個",
			"ケチャップ 大さじ3",
			"バター 10g",
			"塩こしょう 少々",
			"牛乳 大さじ2",
		},
		RecipeInstructions: []string{
			"玉ねぎをみじん切りにする",
			"フライパンでバターを熱し、玉ねぎを炒める",
			"ご飯とケチャップを加えて混ぜ合わせる",
			"卵に牛乳を加えて溶く",
			"別のフライパンで卵を焼き、ご飯を包む",
		},
		Nickname: "料理初心者A",
		Pickup:   1,
		Rank:     "1",
	},
	{
		RecipeID:          "1180006595",
		CategoryID:        "30-302",
		RecipeTitle:       "基本の肉じゃが",
		RecipeURL:         "https://recipe.rakuten.co.jp/recipe/1180006595/",
		FoodImageURL:      "https://image.space.rakuten.co.jp/d/strg/ctrl/3/example2.jpg",
		RecipeDescription: "家庭の定番料理、肉じゃがです。ほっこり美味しい味わい。",
		RecipeIndication:  "約45分",
		RecipeCost:        "500円前後",
		RecipeMaterial: MaterialList{
			"牛肉薄切り 200g",
			"じゃがいも 3個",
			"玉ねぎ 1個",
			"にんじん 1本",
			"糸こんにゃく 100g",
			"☆醤油 大さじ3",
			"☆みりん 大さじ3",
			"☆砂糖 大さじ2",
			"☆だし汁 300ml",
			"サラダ油 大さじ1",
		},
		RecipeInstructions: []string{
			"じゃがいも、にんじんは一口大に切る",
			"玉ねぎはくし切りにする",
			"鍋に油を熱し、牛肉を炒める",
			"野菜を加えて炒め、☆を加える",
			"落とし蓋をして20分煮込む",
		},
		Nickname: "和食マスター",
		Pickup:   1,
		Rank:     "2",
	},
	{
		RecipeID:          "1180006598",
		CategoryID:        "19-236",
		RecipeTitle:       "鶏の照り焼き",
		RecipeURL:         "https://recipe.rakuten.co.jp/recipe/1180006598/",
		FoodImageURL:      "https://image.space.rakuten.co.jp/d/strg/ctrl/3/example5.jpg",
		RecipeDescription: "甘辛いタレが絶品の鶏の照り焼きです。ご飯によく合います。",
		RecipeIndication:  "約20分",
		RecipeCost:        "300円前後",
		RecipeMaterial: MaterialList{
			"鶏もも肉 1枚",
			"☆醤油 大さじ2",
			"☆みりん 大さじ2",
			"☆砂糖 大さじ1",
			"☆酒 大さじ1",
			"サラダ油 小さじ1",
		},
		RecipeInstructions: []string{
			"鶏肉は余分な脂を取り除く",
			"☆の調味料を混ぜ合わせておく",
			"フライパンに油を熱し、鶏肉を皮目から焼く",
			"両面焼いたら、☆のタレを加える",
			"タレを絡めながら照りが出るまで焼く",
		},
		Nickname: "鶏肉大好き",
		Pickup:   1,
		Rank:     "4",
	},
	{
		RecipeID:          "1180006600",
		CategoryID:        "23-251",
		RecipeTitle:       "きのこのバター醤油炒め",
		RecipeURL:         "https://recipe.rakuten.co.jp/recipe/1180006600/",
		FoodImageURL:      "https://image.space.rakuten.co.jp/d/strg/ctrl/3/example7.jpg",
		RecipeDescription: "きのこの旨味たっぷり。簡単に作れる副菜です。",
		RecipeIndication:  "約10分",
		RecipeCost:        "200円前後",
		RecipeMaterial: MaterialList{
			"しめじ 1パック",
			"エリンギ 2本",
			"バター 10g",
			"醤油 大さじ1",
			"にんにく 1片",
			"塩こしょう 少々",
		},
		RecipeInstructions: []string{
			"きのこ類は食べやすい大きさに切る",
			"にんにくはみじん切りにする",
			"フライパンにバターを熱し、にんにくを炒める",
			"きのこを加えて炒める",
			"醤油と塩こしょうで味付ける",
		},
		Nickname: "きのこ農家",
		Pickup:   0,
		Rank:     "12",
	},
	{
		RecipeID:          "1180006602",
		CategoryID:        "31-350",
		RecipeTitle:       "野菜たっぷりカレー",
		RecipeURL:         "https://recipe.rakuten.co.jp/recipe/1180006602/",
		FoodImageURL:      "https://image.space.rakuten.co.jp/d/strg/ctrl/3/example9.jpg",
		RecipeDescription: "野菜がたっぷり入ったヘルシーカレーです。",
		RecipeIndication:  "約50分",
		RecipeCost:        "600円前後",
		RecipeMaterial: MaterialList{
			"豚肉 200g",
			"玉ねぎ 2個",
			"にんじん 1本",
			"じゃがいも 2個",
			"なす 1本",
			"カレールー 1/2箱",
			"水 600ml",
			"サラダ油 大さじ1",
		},
		RecipeInstructions: []string{
			"野菜と肉を一口大に切る",
			"鍋に油を熱し、肉を炒める",
			"野菜を加えて炒める",
			"水を加えて20分煮込む",
			"カレールーを加えて溶かす",
		},
		Nickname: "カレー研究家",
		Pickup:   1,
		Rank:     "7",
	},
	{
		RecipeID:          "1180006604",
		CategoryID:        "14-131",
		RecipeTitle:       "チャーハン",
		RecipeURL:         "https://recipe.rakuten.co.jp/recipe/1180006604/",
		FoodImageURL:      "https://image.space.rakuten.co.jp/d/strg/ctrl/3/example11.jpg",
		RecipeDescription: "パラパラに仕上がるチャーハンのレシピです。",
		RecipeIndication:  "約15分",
		RecipeCost:        "250円前後",
		RecipeMaterial: MaterialList{
			"ご飯 300g",
			"卵 2個",
			"長ねぎ 1/2本",
			"ハム 3枚",
			"☆醤油 大さじ1",
			"☆鶏がらスープの素 小さじ1",
			"サラダ油 大さじ2",
			"塩こしょう 少々",
		},
		RecipeInstructions: []string{
			"ねぎとハムをみじん切りにする",
			"フライパンに油を熱し、卵を炒める",
			"ご飯を加えて炒める",
			"ねぎとハムを加える",
			"☆と塩こしょうで味付ける",
		},
		Nickname: "中華の達人",
		Pickup:   0,
		Rank:     "9",
	},
}

// Samples returns the bundled sample recipes in canonical form. The slice
// is built per call so callers can reorder or trim it freely.
func Samples() []Recipe {
	out := make([]Recipe, len(sampleRecipes))
	for i, raw := range sampleRecipes {
		out[i] = FromRakuten(raw, nil)
	}
	return out
}
